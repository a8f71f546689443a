package main

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	return deps.Printer.Sources(deps.Config.Sources)
}
