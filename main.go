package main

import "github.com/LegacyCodeHQ/cozy/cmd"

func main() {
	cmd.Execute()
}
