// @title           AskMind API
// @version         1.0
// @description     Metered question-answering service with free quota and tiered subscriptions.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /api/v1

package main

import (
	"askmind_backend/internal/app"

	_ "askmind_backend/docs"
)

func main() {
	app.Run()
}
