package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/thenoetrevino/lista/internal/models"
	listsvc "github.com/thenoetrevino/lista/internal/services/list"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.JSONResult(map[string]any{"data": data})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// JSONResult writes fields plus "success": true as one JSON object
func (f *OutputFormatter) JSONResult(fields map[string]any) error {
	out := map[string]any{"success": true}
	for k, v := range fields {
		out[k] = v
	}
	return json.NewEncoder(os.Stdout).Encode(out)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err under code and returns it wrapped with the matching exit code
func (f *OutputFormatter) Fail(err error) error {
	code, exit, suggestion := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return Exit(exit, err)
}

// Classify maps an error to its output code, exit code and suggestion
func Classify(err error) (code string, exit int, suggestion string) {
	switch {
	case errors.Is(err, models.ErrListNotFound):
		return "LIST_NOT_FOUND", ExitNotFound, "run 'lista list ls' to see existing lists"
	case errors.Is(err, models.ErrEmptyTitle),
		errors.Is(err, models.ErrTitleTooLong),
		errors.Is(err, models.ErrEmptyItem):
		return "VALIDATION_ERROR", ExitValidation, ""
	case errors.Is(err, models.ErrIndexOutOfRange):
		return "VALIDATION_ERROR", ExitValidation, "run 'lista item ls' to see item numbers"
	case errors.Is(err, listsvc.ErrLoadFailed):
		return "DATA_ERROR", ExitDataErr, "the saved lists could not be read; check the store or run 'lista clear-all'"
	default:
		return "STORAGE_ERROR", ExitError, ""
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case string:
		fmt.Println(v)
	case []string:
		for _, s := range v {
			fmt.Println(s)
		}
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}
