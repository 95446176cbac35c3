package ui

import "github.com/charmbracelet/lipgloss"

// Explorer palette. Kaia lime marks the network and titles; hashes and
// addresses share one blue so they stand out from decoded values.
var (
	kaiaLime  = lipgloss.Color("#BFF009")
	hashBlue  = lipgloss.Color("#00B4D8")
	hintCyan  = lipgloss.Color("#4CC9F0")
	okGreen   = lipgloss.Color("#00D26A")
	warnAmber = lipgloss.Color("#FFB800")
	failRed   = lipgloss.Color("#FF4444")
	cursorPin = lipgloss.Color("#F15BB5")
	dimGrey   = lipgloss.Color("#555555")
	frameNavy = lipgloss.Color("#1E3A5F")
)

var (
	// StyleTitle heads tables, key/value blocks and the pager.
	StyleTitle = lipgloss.NewStyle().Foreground(kaiaLime).Bold(true).MarginBottom(1)

	// StyleMeta is for labels, dividers and key hints.
	StyleMeta = lipgloss.NewStyle().Foreground(dimGrey)

	styleHeader   = lipgloss.NewStyle().Foreground(cursorPin).Bold(true)
	styleCell     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	styleValue    = styleCell.Bold(true)
	styleSelected = lipgloss.NewStyle().Background(cursorPin).Foreground(lipgloss.Color("#000000")).Bold(true)
	styleHash     = lipgloss.NewStyle().Foreground(hashBlue)
	styleNetwork  = lipgloss.NewStyle().Foreground(kaiaLime).Bold(true)
	styleBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frameNavy).Padding(0, 1)

	styleOK   = lipgloss.NewStyle().Foreground(okGreen).Bold(true)
	styleWarn = lipgloss.NewStyle().Foreground(warnAmber).Bold(true)
	styleFail = lipgloss.NewStyle().Foreground(failRed).Bold(true)
	styleHint = lipgloss.NewStyle().Foreground(hintCyan)
)

// Success marks a completed action, such as a stored API key.
func Success(msg string) string { return styleOK.Render("✓ " + msg) }

// Warn marks a recoverable problem, such as a missing API key.
func Warn(msg string) string { return styleWarn.Render("⚠ " + msg) }

// Err marks a failed call.
func Err(msg string) string { return styleFail.Render("✗ " + msg) }

// Info marks neutral status like "loading" or an empty page.
func Info(msg string) string { return styleHint.Render("ℹ " + msg) }

// Addr highlights an address or hash.
func Addr(a string) string { return styleHash.Render(a) }

func Meta(m string) string { return StyleMeta.Render(m) }

// Network highlights a network name such as mainnet or testnet.
func Network(n string) string { return styleNetwork.Render(n) }
