package controllers

import (
	"errors"
	"strings"

	"rentora/app"
	"rentora/cache"
	"rentora/config"
	"rentora/db"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Srv bundles the dependencies every controller needs.
type Srv struct {
	Repo  *db.Repo
	Cache *cache.Store
	Cfg   config.Config
	Log   zerolog.Logger
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:  db.NewRepo(a.DB),
		Cache: cache.NewStore(a.RDB, a.Config.StatsCacheTTL),
		Cfg:   a.Config,
		Log:   a.Log,
	}
}

// bindErrors turns a gin binding failure into a field->message map so the
// client sees which inputs were rejected. Non-validator errors (malformed
// JSON and the like) come back as a single message.
func bindErrors(err error) app.H {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return app.H{"message": err.Error()}
	}
	fields := make(map[string]string, len(verr))
	for _, fe := range verr {
		fields[lowerFirst(fe.Field())] = fieldMessage(fe)
	}
	return app.H{"errors": fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email format"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		if fe.Kind().String() == "string" {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind().String() == "string" {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "is invalid"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
