// Package domain contains the wire types shared by the Lambda handler and the model backends.
package domain

// Actions accepted by the translation Lambda.
const (
	ActionTranslate = "translate"
	ActionLanguages = "languages"
)

// Request is the input to the translation Lambda.
type Request struct {
	Action              string `json:"action,omitempty"`
	Text                string `json:"text"`
	DestinationLanguage string `json:"destinationLanguage"`
}

// Response is the output from the translation Lambda.
type Response struct {
	Translation     string   `json:"translation,omitempty"`
	LanguageCode    string   `json:"languageCode,omitempty"`
	ChunksProcessed int      `json:"chunksProcessed,omitempty"`
	ChunksFailed    int      `json:"chunksFailed,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// ModelRequest is the request format for the model Lambda. One chunk per call.
type ModelRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"src_lang"`
	TargetLang string `json:"tgt_lang"`
}

// ModelResponse is the response format from the model Lambda.
type ModelResponse struct {
	TranslationText string `json:"translation_text"`
	Error           string `json:"error,omitempty"`
}

// InferenceRequest is the body posted to a Hugging Face style inference endpoint.
type InferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters InferenceParameters `json:"parameters"`
}

// InferenceParameters carries the language pair for an inference call.
type InferenceParameters struct {
	SourceLang string `json:"src_lang"`
	TargetLang string `json:"tgt_lang"`
}

// InferenceResult is one element of an inference endpoint response.
type InferenceResult struct {
	TranslationText string `json:"translation_text"`
}
