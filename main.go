package main

import "skill-share.com/skill-share/cmd"

func main() {
	cmd.Execute()
}
