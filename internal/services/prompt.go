package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildPlacementAnalysisPrompt creates the instruction for analyzing an
// undergraduate resume against a campus placement job description. The resume
// itself is attached to the request as a PDF, not interpolated here.
func (pb *PromptBuilder) BuildPlacementAnalysisPrompt(jobDescription string) string {
	return fmt.Sprintf(`You are an expert career advisor for the tech and finance sectors in India.
Your task is to analyze the provided undergraduate resume against the job description and return a detailed analysis in a structured JSON format.
Context: The student is in the final year and the JD company has arrived for placements.
Note: Based on current industry requirement, A summary is not necessary for Entry-level jobs as there isn't much to summarise for an undergraduate student in comparison to an experienced individual.

**Job Description:**
%s

**My Resume:**
[Resume PDF is provided as a file]

Please provide the following in a structured JSON format with the specified keys:
1.  "recommendation": A clear "Apply" or "Don't Apply" verdict for this specific ROLE.
2.  "match_score": An integer percentage (0-100) of how well the resume matches the job description.
3.  "interview_chance": A qualitative assessment ('High', 'Medium', or 'Low') of the chance of passing the initial screening for an interview.
4.  "hiring_probability": A qualitative assessment ('High', 'Medium', or 'Low') of the overall probability of getting hired for this role if the interview process goes well.
5.  "company_assessment": An object containing an assessment of the COMPANY itself. It should include:
    * "verdict": A recommendation like 'Recommended Company' or 'Apply with Caution'.
    * "summary": A brief summary of the company's reputation, work culture, and growth prospects based on public knowledge.
6.  "summary": A brief overall summary explaining your recommendation, match score, and probabilities.
7.  "strengths": A list of strings identifying skills/experiences that are a strong match. Try to infer tech stack from projects if not mentioned explicitly in the resume.
8.  "gaps": A list of strings identifying key qualifications that are missing or not prominent on the resume.
9.  "preparation_feedback": If "Apply", an object with detailed advice on technical skills, soft skills, and potential interview questions.
10. "resume_improvement_suggestions": A list of specific suggestions to tailor the resume for this job.`,
		jobDescription)
}
