package main

import "github.com/Jeppcode/KPIVisualization/cmd"

func main() {
	cmd.Execute()
}
