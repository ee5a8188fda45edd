package main

import "github.com/seo-analyzer/backend/cmd"

func main() {
	cmd.Execute()
}
