//go:build js && wasm

package main

const targetName = "the web"
