// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-points-ledger/internal/utils"
)

// methodNotFound answers requests whose path exists but whose method is not
// registered for it. They are reported as 404, like unknown paths.
func methodNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), 0, http.StatusNotFound)
}
