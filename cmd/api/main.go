package main

// @title Chatter Notify APIs
// @version 1.0
// @description Relays CI build-status updates to a Salesforce Chatter feed.

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	protocol "chatter-notify/protocal"

	_ "chatter-notify/docs"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
