package prompts

import "time"

// Seed returns the starter library adopted when no collection has been stored.
func Seed(now time.Time) []Prompt {
	base := []CreateCommand{
		{
			Title:       "Professional Email Writer",
			Description: "Generates professional and courteous email responses",
			Text:        "Write a professional email response to the following message, maintaining a courteous and business-appropriate tone: {{input}}",
			Tags:        []string{"email", "business", "communication"},
			LLMType:     LLMGPT4,
			Examples: []Example{{
				Input:  "Need to reschedule our meeting tomorrow due to an emergency.",
				Output: "Dear [Name],\n\nThank you for letting me know about the situation. I completely understand that emergencies can arise unexpectedly. Would you please suggest a few alternative times that work better for you, and I'll be happy to reschedule our meeting?\n\nBest regards,\n[Your name]",
			}},
		},
		{
			Title:       "Code Documentation Generator",
			Description: "Creates comprehensive documentation for code snippets",
			Text:        "Generate detailed documentation for the following code, including description, parameters, return values, and usage examples:\n\n{{input}}",
			Tags:        []string{"programming", "documentation", "technical"},
			LLMType:     LLMGPT4,
			Examples: []Example{{
				Input:  "function calculateTotal(items, taxRate) {\n  const subtotal = items.reduce((sum, item) => sum + item.price, 0);\n  return subtotal * (1 + taxRate);\n}",
				Output: "/**\n * Calculates the total cost including tax for a collection of items\n * \n * @param {Array<Object>} items - Array of items with price property\n * @param {number} taxRate - Tax rate as a decimal (e.g., 0.1 for 10%)\n * @returns {number} Total cost including tax\n * \n * @example\n * const items = [{ price: 10 }, { price: 20 }];\n * const total = calculateTotal(items, 0.1);\n * // Returns: 33 (30 + 10% tax)\n */",
			}},
		},
		{
			Title:       "Blog Post Outline Creator",
			Description: "Generates structured outlines for blog posts",
			Text:        "Create a detailed blog post outline for the topic: {{input}}. Include main sections, subsections, and key points to cover.",
			Tags:        []string{"writing", "content", "blog"},
			LLMType:     LLMGPT4,
			Examples: []Example{{
				Input:  "The Impact of Artificial Intelligence on Modern Healthcare",
				Output: "# The Impact of AI on Modern Healthcare\n\n1. Introduction\n   - Brief history of AI in healthcare\n   - Current state of healthcare technology\n\n2. Diagnostic Applications\n   - Medical imaging analysis\n   - Pattern recognition in patient data\n   - Early disease detection\n\n3. Treatment Planning\n   - Personalized medicine\n   - Drug development\n   - Robot-assisted surgery\n\n4. Patient Care\n   - Remote monitoring\n   - Virtual health assistants\n   - Predictive analytics\n\n5. Challenges and Concerns\n   - Data privacy\n   - Regulatory compliance\n   - Human oversight\n\n6. Future Prospects\n   - Emerging technologies\n   - Integration possibilities\n   - Potential impacts\n\n7. Conclusion\n   - Summary of benefits\n   - Call to action",
			}},
		},
	}

	ids := []string{"1", "2", "3"}
	now = now.UTC()

	seed := make([]Prompt, len(base))
	for i, cmd := range base {
		seed[i] = Prompt{
			ID:             ids[i],
			Title:          cmd.Title,
			Description:    cmd.Description,
			Text:           cmd.Text,
			Tags:           cmd.Tags,
			LLMType:        cmd.LLMType,
			Examples:       cmd.Examples,
			CreatedAt:      now,
			UpdatedAt:      now,
			Version:        1,
			VersionHistory: []Version{},
		}
	}
	return seed
}
