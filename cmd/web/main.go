// @title           Job Board API
// @version         1.0
// @description     REST API for the job board: accounts, job postings, reviews.
// @host            localhost:5000
// @BasePath        /

package main

import "github.com/Jagadeeshroc/backend-of-Achyuta/internal/app"

func main() {
	app.Run()
}
