// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SolutionNotFoundId Id = iota + 1
	SolutionParseErrorId
	ConfigLoadFailedId
	OutputWriteFailedId
	PreviewRenderFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown in the "See also" section
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	solutionNotFoundIssue = &Issue{
		id: SolutionNotFoundId,
		mdMsg: `
# Solution manifest not found!

We could not find a solution manifest at the path you provided.

## Things you can try:
- Check for typos in the path:
~~~
$ slndigest generate path/to/MySolution.sln
~~~

- List candidate manifests from the repository root:
~~~
$ ls *.sln **/*.sln
~~~

- Make sure the file is readable by your user`,
	}

	solutionParseErrorIssue = &Issue{
		id: SolutionParseErrorId,
		mdMsg: `
# Failed to read the solution manifest!

The solution manifest exists but could not be read or understood.

## Common causes:
- The file is locked by another process
- The file is truncated or not a solution manifest at all
- Permission denied

## Things you can try:
- Open the file in an editor and check it starts with a format header
  and contains ` + "`Project(...)`" + ` declaration lines
- Run with verbose mode for more details:
~~~
$ slndigest --verbose generate path/to/MySolution.sln
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the slndigest configuration file.

## Configuration file locations:
- Linux: ~/.config/slndigest/config.cue
- macOS: ~/Library/Application Support/slndigest/config.cue
- Windows: %APPDATA%\slndigest\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ slndigest config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/slndigest/config.cue
~~~

## Example configuration:
~~~cue
rules: {
  excluded_dirs: ["bin", "obj", "node_modules"]
  skip_patterns: [".designer.", ".min.js"]
}

ui: {
  color_scheme: "auto"
  verbose: false
}

output: {
  default_name: "solution-digest.md"
  toc: true
}
~~~`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write the digest!

The digest was assembled but could not be written to the output file.

## Common causes:
- The output directory does not exist
- Permission denied
- The disk is full

## Things you can try:
- Point the output somewhere writable:
~~~
$ slndigest generate MySolution.sln -o /tmp/digest.md
~~~

- Check free space and directory permissions`,
	}

	previewRenderFailedIssue = &Issue{
		id: PreviewRenderFailedId,
		mdMsg: `
# Failed to render the preview!

The digest was written, but the terminal preview could not be rendered.

## Things you can try:
- Open the written digest directly; it is plain Markdown
- Re-run without the preview flag:
~~~
$ slndigest generate MySolution.sln
~~~

- Force a color scheme if your terminal reports an odd background:
~~~cue
ui: {
  color_scheme: "dark"
}
~~~`,
	}

	issues = map[Id]*Issue{
		solutionNotFoundIssue.Id():    solutionNotFoundIssue,
		solutionParseErrorIssue.Id():  solutionParseErrorIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		outputWriteFailedIssue.Id():   outputWriteFailedIssue,
		previewRenderFailedIssue.Id(): previewRenderFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
