package ui

import "github.com/pterm/pterm"

var (
	// Color styles.
	SuccessStyle = pterm.NewStyle(pterm.FgGreen)
	ErrorStyle   = pterm.NewStyle(pterm.FgRed)
	WarningStyle = pterm.NewStyle(pterm.FgYellow)
	InfoStyle    = pterm.NewStyle(pterm.FgCyan)
	MutedStyle   = pterm.NewStyle(pterm.FgGray)

	// Symbol styles.
	SuccessSymbol = pterm.Green("✓")
	ErrorSymbol   = pterm.Red("✗")
	WarningSymbol = pterm.Yellow("⚠")
	InfoSymbol    = pterm.Cyan("→")

	// Section header style.
	HeaderStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	// Diff line styles.
	DiffAddStyle    = pterm.NewStyle(pterm.FgGreen)
	DiffRemoveStyle = pterm.NewStyle(pterm.FgRed)
	DiffHunkStyle   = pterm.NewStyle(pterm.FgCyan)
)
