// Package domain contains the types shared by the demos and the command line:
// flag selections, runtime configuration and the error model.
//
// It does not depend on cobra, slog handlers or any output format.
package domain
