package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/aalexander1088-svg/CalTrak/internal/config"
	"github.com/aalexander1088-svg/CalTrak/internal/database"
	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

func newTestApp() *fiber.App {
	db := database.New(database.NewMemoryStore())
	cfg := &config.Config{Port: "0", Environment: "test"}
	h := New(db, cfg)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	api := app.Group("/api")
	api.Post("/draft/adjust", h.AdjustQuantity)
	api.Post("/draft/remove-item", h.RemoveDraftItem)
	api.Get("/current-user", h.GetCurrentUser)
	api.Put("/current-user", h.SetCurrentUser)

	users := api.Group("/users")
	users.Get("/", h.ListUsers)
	users.Post("/", h.CreateUser)
	users.Delete("/:username", h.DeleteUser)
	users.Get("/:username/today", h.GetToday)
	users.Post("/:username/meals", h.AddMeal)
	users.Delete("/:username/meals/:mealId", h.DeleteMeal)
	users.Post("/:username/meals/undo", h.UndoDelete)
	users.Get("/:username/recent-meals", h.GetRecentMeals)
	users.Get("/:username/goals", h.GetGoals)
	users.Put("/:username/goals", h.SaveGoals)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, APIResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var decoded APIResponse
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp, decoded
}

func draftBody(calories float64) map[string]interface{} {
	return map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"name":               "Test food",
				"quantity":           "1 serving",
				"nutrients":          map[string]float64{"calories": calories},
				"original_nutrients": map[string]float64{"calories": calories},
				"multiplier":         1,
			},
		},
	}
}

func TestAddMealRejectsEmptyItems(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/users/alice/meals", map[string]interface{}{
		"items": []interface{}{},
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if body.Success {
		t.Error("expected success=false")
	}
}

func TestAddMealAndGetToday(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/users/alice/meals", draftBody(500))
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if !body.Success {
		t.Fatalf("response = %+v", body)
	}

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/users/alice/today", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	payload, err := json.Marshal(body.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	var ledger models.DayLedger
	if err := json.Unmarshal(payload, &ledger); err != nil {
		t.Fatalf("decode ledger: %v", err)
	}
	if len(ledger.Meals) != 1 || ledger.Totals.Calories != 500 {
		t.Errorf("ledger = %+v, want one 500 kcal meal", ledger)
	}
}

func TestDeleteMealAndUndo(t *testing.T) {
	app := newTestApp()

	_, body := doJSON(t, app, fiber.MethodPost, "/api/users/alice/meals", draftBody(350))
	payload, _ := json.Marshal(body.Data)
	var meal models.Meal
	if err := json.Unmarshal(payload, &meal); err != nil {
		t.Fatalf("decode meal: %v", err)
	}

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/api/users/alice/meals/"+meal.ID, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/users/alice/meals/undo", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("undo status = %d, want 200", resp.StatusCode)
	}

	// Nothing left to undo.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/users/alice/meals/undo", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("second undo status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteMissingMeal(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodDelete, "/api/users/alice/meals/meal_0", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if body.Error != "meal not found" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestSaveGoalsValidationMessages(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodPut, "/api/users/alice/goals", map[string]interface{}{
		"protein":           150,
		"tracked_nutrients": map[string]bool{"protein": true},
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if body.Error != "Calories must be tracked" {
		t.Errorf("error = %q, want %q", body.Error, "Calories must be tracked")
	}

	resp, body = doJSON(t, app, fiber.MethodPut, "/api/users/alice/goals", map[string]interface{}{
		"tracked_nutrients": map[string]bool{"calories": true},
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if body.Error != "Please set at least one goal" {
		t.Errorf("error = %q, want %q", body.Error, "Please set at least one goal")
	}

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/users/alice/goals", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("goals stored despite rejection, status = %d", resp.StatusCode)
	}
}

func TestDraftAdjustEndpoint(t *testing.T) {
	app := newTestApp()

	body := draftBody(231)
	body["index"] = 0
	body["delta"] = 1
	resp, decoded := doJSON(t, app, fiber.MethodPost, "/api/draft/adjust", body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	payload, _ := json.Marshal(decoded.Data)
	var draft draftResponse
	if err := json.Unmarshal(payload, &draft); err != nil {
		t.Fatalf("decode draft: %v", err)
	}
	if draft.Items[0].Multiplier != 2 || draft.Totals.Calories != 462 {
		t.Errorf("draft = %+v", draft)
	}

	// Out-of-range index is a client error.
	body["index"] = 5
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/draft/adjust", body)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCurrentUserEndpoints(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/current-user", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body.Data != nil {
		t.Errorf("data = %v, want null", body.Data)
	}

	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/current-user", map[string]string{"username": "alice"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	_, body = doJSON(t, app, fiber.MethodGet, "/api/current-user", nil)
	if body.Data != "alice" {
		t.Errorf("data = %v, want alice", body.Data)
	}
}
