package restapi

import "net/http"

// SetRoutes registers the API endpoints.
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", api.healthHandler)
	mux.Handle("GET /api/where/best-route.json", api.withStopPair(api.bestRouteHandler))
	mux.Handle("GET /api/where/next-departures.json", api.withStopPair(api.nextDeparturesHandler))
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.Store.DB.PingContext(r.Context()); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, map[string]string{"status": "ok"})
}
