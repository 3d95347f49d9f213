package http

import (
	"fmt"
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "version: %s\ndate: %s\ncommit: %s\nmode: %s\n", info.Version, info.Date, info.Commit, info.Mode)
}
