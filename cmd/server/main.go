package main

import (
	"fmt"
	"os"
)

// main - точка входа. Вызывает корневую команду и обрабатывает ошибку.
func main() {
	cmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка конфигурации: %v\n", err)
		os.Exit(1)
	}
	if err = cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
