package main

import "github.com/Thomas-Buddemberg/escuela-tortuga/cmd/tortuga/root"

func main() {
	root.Execute()
}
