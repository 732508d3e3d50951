package httpapi

import (
	"fmt"
	"html"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// placeholderSVG renders a neutral gallery tile for photos whose
// preview could not be generated client-side.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="320" height="240" viewBox="0 0 320 240">
  <rect width="320" height="240" fill="#e2e8f0"/>
  <circle cx="120" cy="96" r="28" fill="#94a3b8"/>
  <path d="M48 192 L124 116 L176 168 L216 128 L272 184 L272 208 L48 208 Z" fill="#94a3b8"/>
  <text x="160" y="228" font-family="sans-serif" font-size="12" fill="#64748b" text-anchor="middle">%s</text>
</svg>
`

func (s *Server) handlePlaceholder(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photoID")

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	fmt.Fprintf(w, placeholderSVG, html.EscapeString(photoID))
}
