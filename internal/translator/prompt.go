package translator

import "fmt"

// systemPrompt instructs a chat model to behave like the translation pipeline.
func systemPrompt(sourceCode, targetCode string) string {
	return fmt.Sprintf("You are a translation engine. Translate the user's text from the language "+
		"with FLORES-200 code %s to the language with FLORES-200 code %s. "+
		"Respond with only the translation, nothing else.", sourceCode, targetCode)
}
