// @title           gigwork API
// @version         1.0
// @description     API биржи гигов: клиенты публикуют гиги, фрилансеры откликаются.
// @host            localhost:4000
// @BasePath        /

package main

import "gigwork_backend/internal/app"

func main() {
	app.Run()
}
