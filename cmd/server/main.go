// @title           Resource Hub API
// @version         1.0
// @description     Typed resources and folders with drag-and-drop organisation.
// @host            localhost:8080
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

func main() {
	Execute()
}
