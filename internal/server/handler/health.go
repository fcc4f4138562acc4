package handler

import (
	"net/http"

	"github.com/orbitscale/orbitscale/internal/version"
	"github.com/orbitscale/orbitscale/internal/xhttp"
)

func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, map[string]string{
		"status":  "ok",
		"version": version.Get(),
	})
}
