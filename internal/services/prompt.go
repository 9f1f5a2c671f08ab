package services

import (
	"fmt"
	"strings"

	"hirewise/cv-matcher/internal/models"
)

const (
	LanguageEnglish    = "english"
	LanguageVietnamese = "vietnamese"
)

type PromptBuilder struct {
	maxPromptChars int
}

func NewPromptBuilder(maxPromptChars int) *PromptBuilder {
	if maxPromptChars <= 0 {
		maxPromptChars = 4000
	}
	return &PromptBuilder{maxPromptChars: maxPromptChars}
}

func (pb *PromptBuilder) truncate(text string) string {
	if len(text) > pb.maxPromptChars {
		return text[:pb.maxPromptChars]
	}
	return text
}

func languageInstruction(language, subject string) string {
	if strings.EqualFold(language, LanguageVietnamese) {
		return fmt.Sprintf("Write the %s in Vietnamese language.", subject)
	}
	return fmt.Sprintf("Write the %s in English language.", subject)
}

// BuildParseCVMessages creates the message list for CV field extraction.
func (pb *PromptBuilder) BuildParseCVMessages(cvText string) []ChatMessage {
	system := `You are an expert CV parser with deep understanding of resume formats and recruitment practices.

CORE PRINCIPLES:
1. Extract information from the ENTIRE CV, not just labeled sections
2. Look for implicit mentions and context clues
3. Aggregate information from multiple sources
4. Deduplicate and organize information logically
5. Return ONLY valid JSON with no markdown formatting`

	user := fmt.Sprintf(`Parse this CV comprehensively and extract ALL relevant information from every section:

CV CONTENT:
%s

EXTRACTION GUIDELINES:

1. FULL NAME: usually at the very top; 2-5 capitalized words; exclude emails, phones, addresses, titles.
2. CONTACT INFORMATION: email (xxx@domain.com), phone (any format, international codes included), address (full or partial).
3. EDUCATION: combine formal degrees, certifications, licenses, language certificates and notable courses from the whole CV into one narrative, most recent degree first, with dates, GPA and honors when present.
4. UNIVERSITY: the primary institution name; if several, the one of the most recent or highest degree.
5. EXPERIENCE: combine work history, summary statements about total years, projects, internships and volunteer work into one narrative; keep company names, roles, durations and quantified results.
6. SKILLS: aggregate every skill mention from all sections, deduplicate, normalize names ("nodejs" -> "Node.js"), return as an array of distinct strings.
7. SUMMARY: the candidate's own profile/objective paragraph if one exists, otherwise null.

RETURN THIS EXACT JSON STRUCTURE:

{
  "full_name": "string or null",
  "email": "string or null",
  "phone_number": "string or null",
  "address": "string or null",
  "university": "string or null",
  "education": "combined education narrative or null",
  "experience": "combined experience narrative or null",
  "skills": ["skill1", "skill2", ...] or [],
  "summary": "string or null"
}

Preserve the CV's original language. Return valid JSON only, no markdown, no explanations. Use null or [] for fields not found after a thorough search.`, pb.truncate(cvText))

	return []ChatMessage{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}

// BuildMatchMessages creates the message list for matching a CV against a
// job list. The scoring rubric, including the mandatory-requirement penalty,
// lives entirely in this prompt text.
func (pb *PromptBuilder) BuildMatchMessages(req models.MatchRequest) []ChatMessage {
	system := `You are a senior HR and AI matching expert with 15 years of IT recruitment experience.

Task: analyze the candidate profile and score its fit against EVERY job in the list.

SCORING PROCESS (FOR EACH JOB):

STEP 1: CHECK MANDATORY REQUIREMENTS (STRICT MATCHING - NO INFERENCE)

If a job lists mandatory requirements, identify the required keywords in each one and search the profile and CV text for explicit evidence, in this priority order: education field, university field, experience field, full CV text.

PASS only when every keyword has concrete evidence. Never infer:
- "has a university" does not mean "has a bachelor's degree"
- "1 year of experience" does not mean "3 years of experience"
- "knows Node.js" does not mean "knows Python"

STEP 2A: SCORING WHEN MANDATORY PASSES (OR NO MANDATORY EXISTS)

Base: 100 points, split as relevant experience 0-30, technical skills 0-25, education fit 0-15, level/seniority fit 0-15, location fit 0-10, soft skills 0-5.

STEP 2B: SCORING WHEN MANDATORY FAILS

Apply a -50 point penalty immediately: the new base is 50 and every component is halved (experience 0-15, skills 0-12, education 0-8, level 0-8, location 0-5, soft skills 0-2). The weaknesses list MUST contain "Does not meet mandatory requirement: [the specific requirement]" and the recommendation must state the candidate is not qualified and why.

OUTPUT FORMAT - return JSON exactly in this shape:

{
  "overall_score": <score of best_match>,
  "best_match": {
    "job_id": "<job_id>",
    "job_title": "<job_title>",
    "match_score": <0-100, at most 50 when mandatory fails>,
    "strengths": ["...", "...", "..."],
    "weaknesses": ["...", "..."],
    "recommendation": "detailed assessment, 100-150 words"
  },
  "all_matches": [ <one entry per job, same shape as best_match> ]
}

CRITICAL RULES:
1. A job that fails mandatory requirements MUST score at most 50
2. Its weaknesses MUST include "Does not meet mandatory requirement: [requirement]"
3. all_matches MUST be sorted by match_score descending
4. best_match is the highest-scoring job and overall_score equals its match_score
5. Evaluate the job marked PRIMARY in extra detail - the candidate applied to it
6. Always return valid JSON with no surrounding text`

	var b strings.Builder
	b.WriteString("Analyze this candidate against the jobs below, following the scoring process exactly.\n\n")
	b.WriteString("CANDIDATE PROFILE:\n")
	fmt.Fprintf(&b, "Full name: %s\n", req.CVData.FullName)
	fmt.Fprintf(&b, "Email: %s\n", req.CVData.Email)
	fmt.Fprintf(&b, "Phone: %s\n", orUnknown(req.CVData.PhoneNumber))
	fmt.Fprintf(&b, "Address: %s\n", orUnknown(req.CVData.Address))
	fmt.Fprintf(&b, "University: %s\n", orUnknown(req.CVData.University))
	fmt.Fprintf(&b, "Education: %s\n", orUnknown(req.CVData.Education))
	fmt.Fprintf(&b, "Experience: %s\n", orUnknown(req.CVData.Experience))
	if len(req.CVData.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(req.CVData.Skills, ", "))
	}
	fmt.Fprintf(&b, "\nCV FULL TEXT (excerpt, for additional evidence):\n%s\n", pb.truncate(req.CVText))

	b.WriteString("\nJOBS TO MATCH:\n")
	for idx, job := range req.Jobs {
		primary := ""
		if job.ID == req.PrimaryJobID {
			primary = " [PRIMARY - the candidate applied to this job]"
		}
		fmt.Fprintf(&b, "\nJOB #%d: %s%s\n", idx+1, job.Title, primary)
		fmt.Fprintf(&b, "ID: %s\n", job.ID)
		fmt.Fprintf(&b, "Level: %s\n", orDefault(job.Level, "Not specified"))
		fmt.Fprintf(&b, "Department: %s\n", orDefault(job.Department, "Not specified"))
		fmt.Fprintf(&b, "Job type: %s\n", orDefault(job.JobType, "Not specified"))
		fmt.Fprintf(&b, "Work location: %s\n", orDefault(job.WorkLocation, "Not specified"))
		fmt.Fprintf(&b, "Location: %s\n", orDefault(job.Location, "Not specified"))
		fmt.Fprintf(&b, "Description: %s\n", orDefault(job.Description, "No description"))
		fmt.Fprintf(&b, "Requirements: %s\n", orDefault(job.Requirements, "No specific requirements"))
		fmt.Fprintf(&b, "MANDATORY REQUIREMENTS: %s\n", orDefault(job.MandatoryRequirements, "NONE"))
		fmt.Fprintf(&b, "Benefits: %s\n", orDefault(job.Benefits, "Not specified"))
	}

	fmt.Fprintf(&b, "\nScore ALL %d jobs. Check mandatory requirements first, apply the -50 penalty on failure, sort all_matches descending and set best_match to the top entry. Return ONLY valid JSON in the given format.", len(req.Jobs))

	return []ChatMessage{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: b.String()},
	}
}

// BuildJobDescriptionMessages creates the message list for generating a
// description/requirements/benefits triple.
func (pb *PromptBuilder) BuildJobDescriptionMessages(req models.GenerateJobDescriptionRequest) []ChatMessage {
	system := fmt.Sprintf("You are a professional HR specialist. %s Return ONLY valid JSON.",
		languageInstruction(req.Language, "job description"))

	var b strings.Builder
	b.WriteString("Create a detailed job description:\n\n")
	fmt.Fprintf(&b, "Job Position: %s\n", req.Title)
	fmt.Fprintf(&b, "Department: %s\n", req.Department)
	fmt.Fprintf(&b, "Level: %s\n", req.Level)
	fmt.Fprintf(&b, "Job Type: %s\n", orDefault(req.JobType, "Full-time"))
	fmt.Fprintf(&b, "Location: %s\n", orDefault(req.WorkLocation, "Remote"))
	if req.Keywords != "" {
		fmt.Fprintf(&b, "Required Skills: %s\n", req.Keywords)
	}
	b.WriteString(`
Return JSON:
{
  "description": "Detailed job description (150-250 words)",
  "requirements": "• Requirement 1\n• Requirement 2\n...",
  "benefits": "• Benefit 1\n• Benefit 2\n..."
}`)

	return []ChatMessage{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: b.String()},
	}
}

// BuildInterviewQuestionMessages creates the message list for generating an
// interview question document. The response is markdown, not JSON.
func (pb *PromptBuilder) BuildInterviewQuestionMessages(req models.GenerateInterviewQuestionsRequest) []ChatMessage {
	system := fmt.Sprintf(`You are an expert HR interviewer and recruitment specialist with deep knowledge of technical competency assessment, behavioral interviewing, STAR method questioning and cultural fit evaluation.

Your goal is to create comprehensive, insightful interview questions that help recruiters assess technical skills, problem solving, work style and motivation.

%s

GUIDELINES:
- Questions should be open-ended to encourage detailed responses
- Include follow-up question suggestions in parentheses where relevant
- Adjust technical depth to the job level
- Make questions specific to the job title and department
- If mandatory requirements exist, create questions to verify them`,
		languageInstruction(req.Language, "interview questions"))

	var b strings.Builder
	b.WriteString("Based on the following job information, create 12-15 interview questions:\n\n")
	fmt.Fprintf(&b, "Position: %s\n", req.JobTitle)
	fmt.Fprintf(&b, "Department: %s\n", req.Department)
	fmt.Fprintf(&b, "Level: %s\n", req.Level)
	fmt.Fprintf(&b, "Job Type: %s\n", orDefault(req.JobType, "Full-time"))
	fmt.Fprintf(&b, "Work Location: %s\n", orDefault(req.WorkLocation, "Not specified"))
	fmt.Fprintf(&b, "\nJOB DESCRIPTION:\n%s\n", orDefault(req.Description, "Not specified"))
	fmt.Fprintf(&b, "\nREQUIREMENTS:\n%s\n", orDefault(req.Requirements, "Not specified"))
	fmt.Fprintf(&b, "\nMANDATORY REQUIREMENTS (MUST VERIFY):\n%s\n", orDefault(req.MandatoryRequirements, "None"))
	fmt.Fprintf(&b, `
STRUCTURE YOUR RESPONSE WITH THESE SECTIONS:

# Interview questions for: %s

## Part 1: Technical Knowledge
4-5 questions on required skills, hands-on problem solving and methodologies.

## Part 2: Soft Skills
3-4 questions on teamwork, communication, adaptability and conflict resolution.

## Part 3: Situational Questions
3-4 scenario questions on real challenges of this role, decision making under constraints and prioritization.

## Part 4: Career Goals & Motivation
2-3 questions on why this role, career alignment and development plans.

Use markdown formatting for clear structure. Return ONLY the formatted markdown text - no JSON wrapper, no code blocks, no explanations.`, req.JobTitle)

	return []ChatMessage{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: b.String()},
	}
}

func orUnknown(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "Not provided"
	}
	return *value
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
