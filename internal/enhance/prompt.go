package enhance

import (
	"fmt"

	"portfolioai/internal/model"
)

func resumePrompt(resumeText string) string {
	return "You are a world-class professional resume writing assistant. " +
		"Your task is to rewrite the following resume text to be more impactful, professional, and friendly to Applicant Tracking Systems (ATS). " +
		"Focus on using strong action verbs, quantifying achievements with numbers where possible, and ensuring a clean, readable format in markdown. " +
		"Do not add any information that is not present in the original text. Maintain a professional tone. " +
		"Here is the resume text:\n\n" +
		fmt.Sprintf("--- START OF RESUME ---\n%s\n--- END OF RESUME ---\n\n", resumeText) +
		"Your response must contain ONLY the rewritten resume text in markdown format and nothing else. " +
		"Do not include any introductory phrases, explanations, or conclusions."
}

func projectPrompt(p model.Project) string {
	return "You are an expert portfolio writing assistant for software developers. " +
		"Rewrite the following project description to be more professional, concise, and results-oriented. " +
		"Focus on the technical challenges, the solutions implemented, and the impact of the project. " +
		"Use strong, active verbs. The technologies used were: " + p.Technologies + ".\n\n" +
		fmt.Sprintf("--- START OF DESCRIPTION ---\n%s\n--- END OF DESCRIPTION ---\n\n", p.ProjectDescription) +
		"Your response must contain ONLY the rewritten project description and nothing else. " +
		"Do not include any introductory phrases or explanations."
}
