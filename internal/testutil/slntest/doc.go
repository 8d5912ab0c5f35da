// SPDX-License-Identifier: MPL-2.0

// Package slntest provides test helpers for building solution workspaces on disk.
//
// This package is separate from testutil so the generic helpers stay free of
// solution and project manifest format knowledge.
//
// # Usage
//
//	import "slndigest/internal/testutil/slntest"
//
//	ws := slntest.NewWorkspace(t)
//	ws.AddProject(`App\App.csproj`, slntest.WithFile("Program.cs", "class Program {}"))
//	path := ws.Solution("Sample.sln")
package slntest
