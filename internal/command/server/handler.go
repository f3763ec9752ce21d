package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propstore"
)

// newHandler 返回只读的属性查询路由。
//
// visible 决定哪些 key 对外可见；store 在启动前已完成展开，之后不再写入。
func newHandler(store *propstore.MemoryStore, visible func(key string) bool) http.Handler {
	mux := http.NewServeMux()

	// 健康检查端点
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /properties", func(w http.ResponseWriter, r *http.Request) {
		entries := make([]propstore.Entry, 0, store.Len())
		for _, e := range store.Entries() {
			if visible(e.Key) {
				entries = append(entries, e)
			}
		}
		writeJSON(w, http.StatusOK, entries)
	})

	mux.HandleFunc("GET /properties/{key}", func(w http.ResponseWriter, r *http.Request) {
		key := r.PathValue("key")
		e, ok := store.Entry(key)
		if !ok || !visible(key) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "property not found: " + key})

			return
		}
		writeJSON(w, http.StatusOK, e)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Write response failed", "error", err)
	}
}
