package main

import "github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/cli"

func main() {
	cli.Execute()
}
