package email

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Draft is a fully composed outbound message. Programmatic templates
// produce drafts directly; they do not go through the placeholder renderer.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// InquiryData parameterizes the inquiry reply templates
type InquiryData struct {
	Name         string
	FirstName    string
	Email        string
	Company      string
	Phone        string
	Message      string
	Services     string
	Interest     string
	Page         string
	ReceivedDate string
}

// ProspectData parameterizes the prospect outreach templates
type ProspectData struct {
	BusinessName    string
	City            string
	Category        string
	Phone           string
	Website         string
	AutomationScore int
	ScoreReasons    []string
}

// Generator composes email drafts from entity data. The only
// non-deterministic pieces (meeting-time suggestion, website compliment)
// draw from the injected random source, so tests can seed it and assert
// exact output.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded from the clock
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource creates a Generator with a caller-supplied random
// source
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// GenerateInquiry composes a reply draft for an inquiry using the given
// variant
func (g *Generator) GenerateInquiry(t TemplateType, data InquiryData) (Draft, error) {
	switch t {
	case InquiryProfessional:
		return g.professional(data), nil
	case InquiryFriendly:
		return g.friendly(data), nil
	case InquiryConsultative:
		return g.consultative(data), nil
	case InquiryServiceSpecific:
		return g.serviceSpecific(data), nil
	default:
		return Draft{}, fmt.Errorf("unknown inquiry template type: %s", t)
	}
}

// GenerateProspect composes an outreach draft for a prospect using the given
// variant
func (g *Generator) GenerateProspect(t TemplateType, data ProspectData) (Draft, error) {
	switch t {
	case ProspectColdHigh:
		return g.coldHigh(data), nil
	case ProspectColdMedium:
		return g.coldMedium(data), nil
	case ProspectFollowUp:
		return g.followUp(data), nil
	case ProspectValueBased:
		return g.valueBased(data), nil
	default:
		return Draft{}, fmt.Errorf("unknown prospect template type: %s", t)
	}
}

// excerpt truncates a quoted message for inline display. Counts runes so a
// multi-byte character at the boundary is never split.
func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}

// servicesOrInterest returns whichever interest field the inquiry carries
func servicesOrInterest(data InquiryData) string {
	if data.Services != "" {
		return data.Services
	}
	return data.Interest
}

// suggestedTime produces a meeting-time suggestion. Intentionally varies
// between calls.
func (g *Generator) suggestedTime() string {
	days := []string{"Tuesday", "Wednesday", "Thursday"}
	times := []string{"10am", "2pm", "3pm"}
	return fmt.Sprintf("%s at %s", days[g.rng.Intn(len(days))], times[g.rng.Intn(len(times))])
}

// websiteCompliment produces a short compliment line. Intentionally varies
// between calls.
func (g *Generator) websiteCompliment() string {
	compliments := []string{
		"Clean design!",
		"Nice setup.",
		"Professional look.",
		"Great user experience.",
		"Really well done.",
	}
	return compliments[g.rng.Intn(len(compliments))]
}

func (g *Generator) professional(data InquiryData) Draft {
	subject := "Re: Your Inquiry"
	if data.Company != "" {
		subject += " - " + data.Company
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", data.FirstName)
	b.WriteString("Thank you for reaching out")
	if data.Page != "" {
		fmt.Fprintf(&b, " through %s", data.Page)
	}
	b.WriteString("! I received your inquiry and wanted to respond right away.\n\n")
	if data.Message != "" {
		fmt.Fprintf(&b, "I see you mentioned: \"%s\"\n\n", excerpt(data.Message, 150))
	}
	if interest := servicesOrInterest(data); interest != "" {
		fmt.Fprintf(&b, "You expressed interest in: %s\n\n", interest)
	}
	b.WriteString("I'd love to discuss how EMOR OS can help")
	if data.Company != "" {
		fmt.Fprintf(&b, " %s", data.Company)
	} else {
		b.WriteString(" your business")
	}
	b.WriteString(` streamline lead management and automate your workflow.

Our platform helps businesses:
• Automatically capture and score every lead
• Never miss an inquiry with intelligent notifications
• Generate personalized outreach at scale
• Track engagement and conversions in real-time

Would you be available for a quick 15-minute call this week to explore how we can help?

Best regards,
[Your Name]
EMOR OS - Lead Intelligence System

P.S. - Feel free to reply with your availability or `)
	if data.Phone != "" {
		fmt.Fprintf(&b, "I can call you at %s.", data.Phone)
	} else {
		b.WriteString("share your phone number and I'll reach out.")
	}

	return Draft{Subject: subject, Body: b.String()}
}

func (g *Generator) friendly(data InquiryData) Draft {
	subject := fmt.Sprintf("Hey %s - Let's Talk!", data.FirstName)

	var b strings.Builder
	fmt.Fprintf(&b, "Hey %s!\n\nThanks so much for reaching out!\n\n", data.FirstName)
	if data.Message != "" {
		fmt.Fprintf(&b, "I read through your message about \"%s\" and I think we can definitely help.\n\n", excerpt(data.Message, 100))
	}
	b.WriteString(`Here's the quick version of what EMOR OS does:
→ Captures every lead automatically
→ Scores and prioritizes them instantly
→ Helps you respond faster than your competition
→ Tracks everything so nothing falls through the cracks

`)
	if data.Company != "" {
		fmt.Fprintf(&b, "For %s, this ", data.Company)
	} else {
		b.WriteString("This ")
	}
	b.WriteString(`typically means more conversions with less manual work.

Want to hop on a quick call this week? I can show you exactly how it works for your specific situation.

Cheers,
[Your Name]
EMOR OS`)
	if data.Phone != "" {
		fmt.Fprintf(&b, "\n\nP.S. - I can also call you at %s if that's easier!", data.Phone)
	}

	return Draft{Subject: subject, Body: b.String()}
}

func (g *Generator) consultative(data InquiryData) Draft {
	who := data.Company
	if who == "" {
		who = data.FirstName
	}
	subject := fmt.Sprintf("%s + EMOR OS: Strategic Lead Management", who)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThank you for your inquiry. I wanted to take a moment to share how EMOR OS can specifically address", data.FirstName)
	if data.Company != "" {
		fmt.Fprintf(&b, " %s's", data.Company)
	} else {
		b.WriteString(" your")
	}
	b.WriteString(" lead management challenges.\n\n")
	if data.Message != "" {
		fmt.Fprintf(&b, "Based on your message: \"%s\"\n\nHere's what I'm thinking:\n\n", excerpt(data.Message, 200))
	}
	b.WriteString(`**The Challenge:**
Most businesses lose 30-40% of leads due to slow response times, lack of follow-up, and poor prioritization. The best leads get the same treatment as tire-kickers.

**Our Solution:**
EMOR OS is a lead intelligence system that:

1. **Automated Capture** - Every inquiry from every source flows into one place
2. **Intelligent Scoring** - AI rates each lead's potential so you focus on winners first
3. **Smart Outreach** - Generate personalized responses in seconds, not hours
4. **Complete Tracking** - See every interaction, never wonder "did we follow up?"

`)
	if interest := servicesOrInterest(data); interest != "" {
		fmt.Fprintf(&b, "**Specifically for %s:**\nWe've helped similar businesses increase response rates by 3x and conversion rates by 40%% just by responding faster and smarter.\n\n", interest)
	}
	b.WriteString(`**Next Steps:**
I'd like to schedule a 20-minute consultation to:
• Understand your current lead flow
• Show you how EMOR OS would work for your specific situation
• Create a custom automation plan

Are you available this week?

Best regards,
[Your Name]
Lead Intelligence Specialist
EMOR OS
`)
	if data.Phone != "" {
		fmt.Fprintf(&b, "\nPhone: %s", data.Phone)
	}
	fmt.Fprintf(&b, "\nEmail: %s", data.Email)

	return Draft{Subject: subject, Body: b.String()}
}

func (g *Generator) serviceSpecific(data InquiryData) Draft {
	service := data.Services
	if service == "" {
		service = "Your Service"
	}
	subject := fmt.Sprintf("%s + Lead Intelligence - Let's Talk", service)

	interest := servicesOrInterest(data)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThanks for your interest in", data.FirstName)
	if data.Services != "" {
		fmt.Fprintf(&b, " %s!\n\n", data.Services)
	} else {
		b.WriteString(" our services!\n\n")
	}
	if data.Company != "" {
		fmt.Fprintf(&b, "I looked into %s ", data.Company)
	} else {
		b.WriteString("I ")
	}
	b.WriteString("wanted to reach out personally because I think we have a really strong solution for ")
	if interest != "" {
		b.WriteString(interest)
	} else {
		b.WriteString("your needs")
	}
	b.WriteString(".\n\n**What makes us different:**\n\nFor ")
	if interest != "" {
		b.WriteString(interest)
	} else {
		b.WriteString("your industry")
	}
	b.WriteString(`, the biggest challenge is usually managing inquiry volume while maintaining quality. That's exactly what EMOR OS solves:

✓ Every inquiry captured and organized automatically
✓ AI scoring to identify your best prospects immediately
✓ Intelligent follow-up suggestions based on lead behavior
✓ Full tracking so your team always knows what's happening
`)
	if data.Message != "" {
		fmt.Fprintf(&b, "\n**Regarding your specific question:**\n\"%s\"\n\nI have some ideas on how we can address this.\n", excerpt(data.Message, 150))
	}
	fmt.Fprintf(&b, `
Let's schedule a quick demo where I can show you:
→ How leads would flow through YOUR system
→ What automation would look like for YOUR team
→ The ROI you could expect in YOUR situation

I have time this week - does %s work for you?

Looking forward to connecting,
[Your Name]
EMOR OS`, g.suggestedTime())
	if data.Phone != "" {
		fmt.Fprintf(&b, "\n\nI can also call you directly at %s.", data.Phone)
	}

	return Draft{Subject: subject, Body: b.String()}
}

func (g *Generator) coldHigh(data ProspectData) Draft {
	subject := fmt.Sprintf("%s - Lead Management Opportunity", data.BusinessName)

	var scoreRemark string
	switch {
	case data.AutomationScore >= 80:
		scoreRemark = "That's exceptionally high - you're prime for automation."
	case data.AutomationScore >= 60:
		scoreRemark = "That's above average - there's real opportunity here."
	default:
		scoreRemark = "There's definitely room for improvement."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi there,\n\nI came across %s", data.BusinessName)
	if data.City != "" {
		fmt.Fprintf(&b, " in %s", data.City)
	}
	b.WriteString(" and noticed something interesting.\n\n")
	if data.Category != "" {
		fmt.Fprintf(&b, "As a %s business, ", data.Category)
	}
	fmt.Fprintf(&b, `You're likely dealing with:
• Multiple inquiry sources (website, phone, social, referrals)
• Inconsistent response times
• Leads falling through the cracks
• Not knowing which leads to prioritize

Sound familiar?

**Here's what caught my attention:**
Based on your business profile, I calculated an automation readiness score of %d/100. %s

`, data.AutomationScore, scoreRemark)
	if len(data.ScoreReasons) > 0 {
		b.WriteString("**Why this score?**\n")
		reasons := data.ScoreReasons
		if len(reasons) > 3 {
			reasons = reasons[:3]
		}
		for _, r := range reasons {
			fmt.Fprintf(&b, "• %s\n", r)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, `**What EMOR OS Does:**

Think of it as an intelligent assistant that:
→ Captures every lead automatically, from every source
→ Scores and prioritizes them in seconds
→ Suggests perfect responses based on lead quality
→ Tracks everything so nothing gets missed

The result? Most clients see 2-3x more conversions just from better organization and faster response.

**Quick Question:**
Would you be interested in a 10-minute demo to see how this would work specifically for %s?

I can show you:
1. How your current leads would be organized
2. What automation would look like for your workflow
3. Expected ROI based on your lead volume

No pressure - just want to show you what's possible.

Best,
[Your Name]
EMOR OS - Lead Intelligence`, data.BusinessName)
	if data.Phone != "" {
		fmt.Fprintf(&b, "\n\nP.S. - I can also call you at %s if that's easier.", data.Phone)
	}
	if data.Website != "" {
		fmt.Fprintf(&b, "\nP.P.S. - Took a look at %s - nice setup!", data.Website)
	}

	return Draft{Subject: subject, Body: b.String()}
}

func (g *Generator) coldMedium(data ProspectData) Draft {
	subject := fmt.Sprintf("Quick question for %s", data.BusinessName)

	category := data.Category
	if category == "" {
		category = "businesses"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Hi,

Quick question: How are you currently managing your incoming leads?

I ask because I work with %s like %s, and I keep hearing the same challenges:
• "We're too slow to respond"
• "Leads slip through the cracks"
• "We waste time on bad leads"
• "We don't know what's working"

If any of that resonates, I might be able to help.

**What I Do:**
I help businesses set up intelligent lead management with EMOR OS. It's basically an AI-powered system that:
- Captures every inquiry automatically
- Scores each one so you know who to call first
- Suggests responses based on the lead quality
- Tracks everything end-to-end

**Your Situation:**
Based on %s's profile`, category, data.BusinessName, data.BusinessName)
	if data.City != "" {
		fmt.Fprintf(&b, " in %s", data.City)
	}
	fmt.Fprintf(&b, ", I calculated an automation score of %d/100. That suggests you could benefit from better lead organization.\n\n", data.AutomationScore)
	if data.AutomationScore >= 50 {
		b.WriteString("Want to see how it would work for your specific setup? I can show you in 10 minutes.")
	} else {
		b.WriteString("Not sure if it's a fit, but happy to show you what's possible in 10 minutes.")
	}
	b.WriteString(`

No commitment, just a quick look.

Interested?

[Your Name]
EMOR OS`)
	if data.Phone != "" {
		fmt.Fprintf(&b, "\n\nPhone: %s", data.Phone)
	}
	if data.Website != "" {
		fmt.Fprintf(&b, "\n\n(Nice website by the way - %s)", data.Website)
	}

	return Draft{Subject: subject, Body: b.String()}
}

func (g *Generator) followUp(data ProspectData) Draft {
	subject := fmt.Sprintf("Following up - %s", data.BusinessName)

	category := data.Category
	if category == "" {
		category = "businesses"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi,\n\nI reached out last week about lead management for %s", data.BusinessName)
	if data.City != "" {
		fmt.Fprintf(&b, " in %s", data.City)
	}
	fmt.Fprintf(&b, `.

Not sure if you saw it, but I wanted to follow up quickly.

**The short version:**
Most %s lose 30-40%% of leads due to poor organization and slow response times. EMOR OS fixes that with intelligent automation.

**One stat that matters:**
Our clients typically see 2-3x more conversions within 60 days, just from:
→ Responding faster (minutes vs hours/days)
→ Prioritizing the right leads
→ Never missing a follow-up

With your automation score of %d/100, I think there's real opportunity here.

**Simple ask:**
10-minute screen share where I show you exactly how it would work for %s. No pitch, just showing you what's possible.

Available this week?

Best,
[Your Name]
EMOR OS

P.S. - If this isn't the right time, just let me know and I won't bug you again!`, category, data.AutomationScore, data.BusinessName)

	return Draft{Subject: subject, Body: b.String()}
}

func (g *Generator) valueBased(data ProspectData) Draft {
	subject := fmt.Sprintf("Free lead audit for %s", data.BusinessName)

	category := data.Category
	if category == "" {
		category = "businesses"
	}
	area := data.City
	if area == "" {
		area = "your area"
	}

	var scoreRemark string
	if data.AutomationScore >= 60 {
		scoreRemark = "With a score that high, I'm confident we can show you some significant opportunities."
	} else {
		scoreRemark = "Even with room for improvement in your score, there's usually 30-40% more revenue just sitting in better organization."
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Hi there,

I'm doing something a bit different - offering free lead audits to %s in %s.

**What I'll do (free):**
1. Analyze your current lead sources
2. Identify where leads are being lost
3. Calculate your potential revenue recovery
4. Show you what's possible with better automation

**Why free?**
I'm building case studies for EMOR OS (lead intelligence platform), and %s would be a perfect fit based on your automation score of %d/100.

%s

**What you get:**
• Clear analysis of your current lead flow
• Specific recommendations (whether you use us or not)
• Calculator showing potential ROI
• No obligation whatsoever

**Time investment:**
About 20 minutes total - quick call or screen share.

Interested?

[Your Name]
Lead Intelligence Specialist
EMOR OS`, category, area, data.BusinessName, data.AutomationScore, scoreRemark)
	if data.Website != "" {
		fmt.Fprintf(&b, "\n\nP.S. - Checked out %s. %s", data.Website, g.websiteCompliment())
	}
	if data.Phone != "" {
		fmt.Fprintf(&b, "\nP.P.S. - Can call you at %s if that's easier.", data.Phone)
	}

	return Draft{Subject: subject, Body: b.String()}
}
