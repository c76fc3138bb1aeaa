package handlers

import (
	"brew-and-bite-api/catalog"
	"brew-and-bite-api/engine"
	"brew-and-bite-api/notify"
	"brew-and-bite-api/sentiment"
)

// Collaborators the handlers are wired with at startup. The catalog is
// read-only after Init; the rest are safe for concurrent use.
var (
	Catalog    *catalog.Catalog
	Weather    *engine.WeatherClient
	Mail       *notify.Mailer
	Classifier sentiment.Classifier
	Rng        engine.Rand
)

// Init wires the handler collaborators. Call once before registering routes.
func Init(cat *catalog.Catalog, weather *engine.WeatherClient, mail *notify.Mailer, classifier sentiment.Classifier) {
	Catalog = cat
	Weather = weather
	Mail = mail
	Classifier = classifier
	Rng = engine.SystemRand()
}

// imageURL is the static path a menu item's photo is served from.
func imageURL(itemID int) string {
	return "/static/" + Catalog.ImagePath(itemID)
}
