package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"portfolioai/internal/errors"
	"portfolioai/internal/model"
)

const portfolioSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["fullName", "professionalTitle", "email", "phone", "aboutMe", "skills", "projects"],
  "properties": {
    "fullName": {"type": "string"},
    "professionalTitle": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "aboutMe": {"type": "string"},
    "skills": {"type": "string"},
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["projectName", "projectDescription", "technologies"],
        "properties": {
          "projectName": {"type": "string"},
          "projectURL": {"type": ["string", "null"]},
          "projectDescription": {"type": "string"},
          "technologies": {"type": "string"}
        }
      }
    }
  }
}`

var portfolioSchema = jsonschema.MustCompileString("portfolio.json", portfolioSchemaJSON)

// bindPortfolio reads the request body, checks it against the portfolio schema
// and decodes it.
func bindPortfolio(c echo.Context) (model.Portfolio, error) {
	var portfolio model.Portfolio

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return portfolio, badRequest("could not read request body")
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return portfolio, badRequest("request body is not valid JSON")
	}
	if err := portfolioSchema.Validate(doc); err != nil {
		return portfolio, validationFailed(errors.Validation("%s", describeSchemaError(err)))
	}

	if err := json.Unmarshal(body, &portfolio); err != nil {
		return portfolio, validationFailed(errors.Validation("%v", err))
	}
	// ids are assigned by the store
	portfolio.ID = 0
	portfolio.OwnerID = 0
	if portfolio.Projects == nil {
		portfolio.Projects = model.Projects{}
	}
	return portfolio, nil
}

// describeSchemaError flattens a schema failure into "location: message" pairs.
func describeSchemaError(err error) string {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var parts []string
	collectLeaves(verr, &parts)
	if len(parts) == 0 {
		return verr.Message
	}
	return strings.Join(parts, "; ")
}

func collectLeaves(verr *jsonschema.ValidationError, parts *[]string) {
	if len(verr.Causes) == 0 {
		loc := verr.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*parts = append(*parts, fmt.Sprintf("%s: %s", loc, verr.Message))
		return
	}
	for _, cause := range verr.Causes {
		collectLeaves(cause, parts)
	}
}
