// Package press builds pressure prompts and generates them through Gemini.
// This file contains the deterministic instruction-block builders.
package press

import (
	"fmt"

	"github.com/carbon-dev/carbon/internal/domain"
)

// styleBlurbs set the tone clause for each pressure style.
var styleBlurbs = map[domain.PressureStyle]string{
	domain.StyleGentle:    "Tone: empathic, spare, direct. No pep-talk.",
	domain.StyleBrutal:    "Tone: sharp, disruptive, slightly confrontational. No comfort.",
	domain.StyleTechnical: "Tone: craft editor. Give constraints and technique, not feelings.",
	domain.StyleAbstract:  "Tone: oblique. Speak in metaphor and image only.",
}

// intensityBlurbs adapt the register to the user's current intensity.
var intensityBlurbs = map[domain.Intensity]string{
	domain.IntensityLow:  "User intensity: low. You can be brisk and clean.",
	domain.IntensityMed:  "User intensity: medium. Be steady, specific, and grounding.",
	domain.IntensityHigh: "User intensity: high. Be careful: concise, anchored, no escalation.",
}

// VesselHints give the medium-specific craft focus. Exposed for the vessel
// selection view.
var VesselHints = map[domain.Medium]string{
	domain.MediumSong:   "For Songwriters: focus on imagery, rhythm, or a specific melodic hook idea.",
	domain.MediumScript: "For Scriptwriters: focus on stage directions, subtext, and playable action.",
	domain.MediumNovel:  "For Novelists: focus on scene, POV, sensory detail, and conflict beat.",
	domain.MediumPoem:   "For Poets: focus on form, sound, line breaks, and one sharp image.",
}

// StyleDescriptions are the one-line selector descriptions per style.
var StyleDescriptions = map[domain.PressureStyle]string{
	domain.StyleGentle:    "Empathic reframing, clear next step, low friction.",
	domain.StyleBrutal:    "Confrontational constraint, no comfort, push the nerve.",
	domain.StyleTechnical: "Craft-first: rhythm, structure, form, devices.",
	domain.StyleAbstract:  "Metaphor-only, oblique, image-led, no literal language.",
}

// buildInitialSystem constructs the role-and-rules block for the first
// pressure prompt. Deterministic in its inputs.
func buildInitialSystem(in domain.PromptInput) string {
	return fmt.Sprintf(`You are "The Press" in the Carbon Assistant. Your job: take a user's raw, vulnerable emotion (the Carbon) and a creative medium (the Vessel) and apply Pressure.
Rules:
1) Do NOT write the song/script/story/poem for them.
2) Do NOT be overly cheerful. Be empathetic but disruptive.
3) Output ONE concrete, actionable starting prompt that reframes their feeling into a technical or metaphorical challenge.
4) Be concise (one paragraph max).
5) %s
6) %s
7) %s
8) Include ONE constraint (limit, form, rule, or device).`,
		VesselHints[in.Medium], styleBlurbs[in.PressureStyle], intensityBlurbs[in.Intensity])
}

func buildInitialQuery(in domain.PromptInput) string {
	return fmt.Sprintf("Feeling: %q. Vessel: %q. Apply pressure.", in.Feeling, in.Medium)
}

// buildFollowUpSystem constructs the block for a follow-up prompt. The rules
// require a new angle, one constraint, and one cut; the response is not
// validated against them.
func buildFollowUpSystem(in domain.FollowUpInput) string {
	return fmt.Sprintf(`You are "The Press" in the Carbon Assistant.
Goal: deepen the existing pressure WITHOUT writing the work.
Rules:
1) Do NOT write the piece for them.
2) Output ONE new pressure prompt (one paragraph max).
3) The new prompt must be DIFFERENT: new angle, new constraint.
4) Include exactly ONE constraint and one "cut": one thing to remove or avoid.
5) %s
6) %s
7) %s`,
		VesselHints[in.Medium], styleBlurbs[in.PressureStyle], intensityBlurbs[in.Intensity])
}

func buildFollowUpQuery(in domain.FollowUpInput) string {
	return fmt.Sprintf(`Context:
Feeling: %q
Vessel: %s
Previous Pressure: %q
Current Draft (may be empty):
<<<
%s
>>>

Give ONE stronger follow-up pressure prompt.`,
		in.Feeling, in.Medium, in.PreviousPrompt, in.CurrentDraft)
}
