package main

import "github.com/XenosWarlocks/Read-Write-Analysis/cmd"

func main() {
	cmd.Execute()
}
