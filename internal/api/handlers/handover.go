package handlers

import (
	"regexp"
	"strings"

	"field-service-backend/internal/database/models"
)

// Clients send handover data in camelCase; it is stored in snake_case.
var (
	handoverStorageKeys = map[string]string{
		"gasReading":      "gas_reading",
		"electricReading": "electric_reading",
		"keyReturn":       "key_return_info",
		"proofPhotoUrl":   "proof_photo_url",
	}
	handoverClientKeys = map[string]string{
		"gas_reading":      "gasReading",
		"electric_reading": "electricReading",
		"key_return_info":  "keyReturn",
		"key_return":       "keyReturn",
		"proof_photo_url":  "proofPhotoUrl",
	}

	wordBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerToUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

func camelToSnake(s string) string {
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(lowerToUpper.ReplaceAllString(s, "${1}_${2}"))
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}
	return b.String()
}

// handoverToStorage renames client handover keys to their stored form. Values are untouched.
func handoverToStorage(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		if mapped, ok := handoverStorageKeys[k]; ok {
			out[mapped] = v
			continue
		}
		out[camelToSnake(k)] = v
	}
	return out
}

// handoverToClient renames stored handover keys to the client form
func handoverToClient(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		if mapped, ok := handoverClientKeys[k]; ok {
			out[mapped] = v
			continue
		}
		out[snakeToCamel(k)] = v
	}
	return out
}

// jobForClient returns a copy of job whose handover data uses client keys
func jobForClient(job *models.Job) *models.Job {
	if job == nil || job.HandoverData == nil {
		return job
	}
	out := *job
	out.HandoverData = handoverToClient(job.HandoverData)
	return &out
}

func jobsForClient(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	for i := range jobs {
		out[i] = *jobForClient(&jobs[i])
	}
	return out
}
