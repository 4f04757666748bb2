// Package metrics holds the Prometheus collectors of the node components.
package metrics

const namespace = "chainexec"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown[T ~string](v T) string {
	if v == "" {
		return "unknown"
	}
	return string(v)
}
