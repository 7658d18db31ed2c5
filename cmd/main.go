package main

import "github.com/adanyl0v/go-todo-stories/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustInitStorage()
	defer app.DisconnectStorage()

	app.MustListenAndServeHTTP()
}
