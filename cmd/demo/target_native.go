//go:build !js

package main

const targetName = "native"
