package main

import "github.com/davinsyabanp/SakuKu/cmd"

func main() {
	cmd.Execute()
}
