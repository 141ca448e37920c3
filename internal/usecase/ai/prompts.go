package ai

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
)

// User-facing messages
const (
	MessageNotReady     = "Please generate a transcript first."
	MessageChatNotReady = "Please generate a transcript first before chatting."

	// ChatFallback is what the model is told to answer when the transcript has nothing on the question
	ChatFallback = "I could not find an answer to that in the video."
)

func shortSummaryPrompt(transcript string) string {
	return "Generate a short, one-paragraph summary of the following video transcript:\n\n" + transcript
}

func chunkSummaryPrompt(chunk string) string {
	return "This is one part of a larger video transcript. Please provide a concise summary of just this section:\n\n" + chunk
}

func combineSummariesPrompt(summaries string) string {
	return "The following are summaries of sequential parts of a video. Please combine them into a single, detailed, and coherent summary of the entire video:\n\n" + summaries
}

func bulletPointsPrompt(transcript string) string {
	return "Based on the following video transcript, extract the main ideas and present them as a concise list of bullet points. Each bullet point should be on a new line and start with a '*' character:\n\n" + transcript
}

func chatPrompt(transcript string, history []entities.ChatTurn, message string) string {
	return fmt.Sprintf("You are a helpful assistant. Your task is to answer a user's question based *only* on the provided video transcript.\n"+
		"If the answer is not in the transcript, say \"%s\"\n\n"+
		"Here is the full video transcript for context:\n---\n%s\n---\n\n"+
		"Here is the conversation history so far:\n%s\n\n"+
		"New Question: %s\n\nYour Answer:",
		ChatFallback, transcript, formatHistory(history), message)
}

// formatHistory renders prior turns one per line; no turns renders as an empty string
func formatHistory(history []entities.ChatTurn) string {
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		switch turn.Role {
		case entities.ChatRoleUser:
			lines = append(lines, "User: "+turn.Content)
		case entities.ChatRoleAssistant:
			lines = append(lines, "Assistant: "+turn.Content)
		}
	}
	return strings.Join(lines, "\n")
}

func failureMessage(operation string, err error) string {
	switch operation {
	case opShortSummary:
		return fmt.Sprintf("An error occurred during summary generation: %v", err)
	case opDetailedSummary:
		return fmt.Sprintf("An error occurred during detailed summary generation: %v", err)
	case opBulletPoints:
		return fmt.Sprintf("An error occurred during bullet point generation: %v", err)
	default:
		return fmt.Sprintf("Sorry, an error occurred: %v", err)
	}
}
