package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/greek-text/grac"
)

// ---- JSON response types ------------------------------------------------

type syllabifyResponse struct {
	Word      string   `json:"word"`
	Mode      string   `json:"mode"`
	Syllables []string `json:"syllables"`
	Stress    int      `json:"stress"`
}

type tokenResultJSON struct {
	Token     string   `json:"token"`
	Offset    int      `json:"offset"`
	Syllables []string `json:"syllables"`
	Stress    int      `json:"stress,omitempty"`
}

type syllabifyTextResponse struct {
	Results []tokenResultJSON `json:"results"`
}

type monoResponse struct {
	Text      string `json:"text"`
	Mono      string `json:"mono"`
	Diaeresis string `json:"diaeresis"`
}

type accentResponse struct {
	Word     string `json:"word"`
	Position int    `json:"position"`
	Result   string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.String("err", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleSyllabify(s *grac.Syllabifier, m *metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		merge, ok := grac.ParseMerge(r.URL.Query().Get("mode"))
		if !ok {
			writeError(w, http.StatusBadRequest, "mode must be one of lookup, never, every")
			return
		}

		seg := s.Segment(word, merge)
		m.words.Inc()
		writeJSON(w, http.StatusOK, syllabifyResponse{
			Word:      word,
			Mode:      merge.String(),
			Syllables: seg.Strings(),
			Stress:    seg.Stress(),
		})
	}
}

func handleSyllabifyText(s *grac.Syllabifier, m *metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		results := s.SyllabifyText(body.Text)
		out := make([]tokenResultJSON, 0, len(results))
		for _, res := range results {
			out = append(out, tokenResultJSON{
				Token:     res.Token,
				Offset:    res.Offset,
				Syllables: res.Syllables,
				Stress:    res.Stress,
			})
		}
		m.words.Add(float64(len(out)))
		writeJSON(w, http.StatusOK, syllabifyTextResponse{Results: out})
	}
}

func handleMono(s *grac.Syllabifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		policy, ok := grac.ParseDiaeresisPolicy(r.URL.Query().Get("diaeresis"))
		if !ok {
			writeError(w, http.StatusBadRequest, "diaeresis must be one of load-bearing, preserve, strip")
			return
		}
		writeJSON(w, http.StatusOK, monoResponse{
			Text:      text,
			Mono:      s.ToMonotonicWith(text, policy),
			Diaeresis: policy.String(),
		})
	}
}

func handleAccent(s *grac.Syllabifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		pos, err := strconv.Atoi(r.URL.Query().Get("position"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "'position' must be an integer")
			return
		}

		result, err := s.AddAcute(word, pos)
		if errors.Is(err, grac.ErrPositionOutOfRange) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("add acute: %v", err))
			return
		}
		writeJSON(w, http.StatusOK, accentResponse{Word: word, Position: pos, Result: result})
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// newMux wires the API routes, instrumented with m.
func newMux(s *grac.Syllabifier, m *metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/syllabify/text", m.instrument("syllabify_text", handleSyllabifyText(s, m)))
	mux.HandleFunc("/api/syllabify", m.instrument("syllabify", handleSyllabify(s, m)))
	mux.HandleFunc("/api/mono", m.instrument("mono", handleMono(s)))
	mux.HandleFunc("/api/accent", m.instrument("accent", handleAccent(s)))
	mux.HandleFunc("/healthz", handleHealth)
	mux.Handle("/metrics", m.handler)
	return mux
}
