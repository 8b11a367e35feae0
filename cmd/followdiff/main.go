package main

import "github.com/dbsmedya/followdiff/cmd/followdiff/cmd"

func main() {
	cmd.Execute()
}
