// Package http holds the HTTP handlers for the template, bank and
// generation endpoints.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moderras/quizforge/internal/exam"
	"github.com/moderras/quizforge/internal/paper"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exam.ErrTemplateNotFound), errors.Is(err, exam.ErrBankNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, exam.ErrUnsupportedStyle),
		errors.Is(err, exam.ErrNilTemplate),
		errors.Is(err, exam.ErrNilQuestion),
		errors.Is(err, exam.ErrNilSection),
		errors.Is(err, exam.ErrNilConfig),
		errors.Is(err, exam.ErrPageOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func queryInt(r *http.Request, key, def string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		v = def
	}
	n, _ := strconv.Atoi(v)
	return n
}

// PUT /templates
func PutTemplateHandler(store exam.TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t exam.ExamTemplate
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if t.ID == "" {
			http.Error(w, "id required", http.StatusBadRequest)
			return
		}
		if err := store.PutTemplate(r.Context(), t); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": t.ID})
	}
}

// GET /templates/{templateID}
func GetTemplateHandler(store exam.TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := store.GetTemplate(r.Context(), chi.URLParam(r, "templateID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// GET /templates?limit=&offset=
func ListTemplatesHandler(store exam.TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.ListTemplates(r.Context(), queryInt(r, "limit", "50"), queryInt(r, "offset", "0"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// PUT /banks
func PutBankHandler(store exam.BankStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var b exam.QuestionBank
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if b.ID == "" {
			http.Error(w, "id required", http.StatusBadRequest)
			return
		}
		if err := store.PutBank(r.Context(), b); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": b.ID})
	}
}

// GET /banks/{bankID}
func GetBankHandler(store exam.BankStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := store.GetBank(r.Context(), chi.URLParam(r, "bankID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

// GET /banks?limit=&offset=
func ListBanksHandler(store exam.BankStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.ListBanks(r.Context(), queryInt(r, "limit", "50"), queryInt(r, "offset", "0"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type generateRequest struct {
	TemplateID string               `json:"template_id"`
	BankID     string               `json:"bank_id"`
	Options    exam.GenerateOptions `json:"options"`
}

type generateResponse struct {
	LaTeX         string  `json:"latex"`
	AnswerSheet   string  `json:"answer_sheet"`
	TotalPoints   float64 `json:"total_points"`
	PageCount     int     `json:"page_count"`
	QuestionCount int     `json:"question_count"`
}

// POST /generate
func GenerateHandler(g *paper.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.TemplateID == "" || req.BankID == "" {
			http.Error(w, "template_id and bank_id required", http.StatusBadRequest)
			return
		}
		res, err := g.Generate(r.Context(), req.TemplateID, req.BankID, req.Options)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, generateResponse{
			LaTeX:         res.Document.Body,
			AnswerSheet:   res.Document.AnswerSheet,
			TotalPoints:   res.Document.TotalPoints,
			PageCount:     res.Document.PageCount,
			QuestionCount: res.QuestionCount,
		})
	}
}
