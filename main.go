package main

import "github.com/HullPerse/jekafood/cmd/jekafood"

func main() {
	jekafood.Execute()
}
