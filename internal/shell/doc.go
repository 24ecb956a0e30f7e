// Package shell provides shell integration for monat.
// It generates an mcd function (Zsh, Bash, Fish) that changes into the
// directory printed by monat resolve, and installs it into the shell rc file.
package shell
