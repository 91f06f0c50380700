package main

import . "docdiff/internal/config"
import . "docdiff/internal/logger"
import . "docdiff/internal/ui"
import "docdiff/internal/diff"
import "docdiff/internal/theme"
import "fmt"
import "os"


func main() {
	Log.Start()
	config := GetConfig()

	theme.Set(config.Theme)
	theme.Override(config.Colors.Added, config.Colors.Removed, config.Colors.Selected)
	diff.PreviewLength = config.Preview

	args := os.Args[1:]

	if len(args) == 2 && args[0] == "-git" {
		ViewerGlobal.Config = config
		ViewerGlobal.StartGit(args[1])
		return
	}

	if len(args) != 2 {
		fmt.Println("usage: docdiff fileA fileB")
		fmt.Println("       docdiff -git file")
		os.Exit(1)
	}

	ViewerGlobal.Config = config
	ViewerGlobal.Start(args[0], args[1])
}
