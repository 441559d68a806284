// Package util holds small helpers shared by the config and server packages.
package util
