package news

import "watchfloor/internal/domain/operation"

type template struct {
	Headline string
	Summary  string
}

type templateKey struct {
	Kind   operation.ActionKind
	Stance operation.Stance
}

var triggeredTemplates = map[templateKey]template{
	{operation.ActionIncreasedMonitoring, operation.StanceCritical}: {
		Headline: "Residents of {neighborhood} report being watched",
		Summary:  "{citizen} says unmarked cars have followed them for days. Civil liberties groups demand answers.",
	},
	{operation.ActionTravelRestriction, operation.StanceCritical}: {
		Headline: "{citizen} barred from leaving the country without explanation",
		Summary:  "Lawyers call the travel ban arbitrary and politically motivated.",
	},
	{operation.ActionTravelRestriction, operation.StanceStateFriendly}: {
		Headline: "Travel precautions applied to persons of interest",
		Summary:  "Officials say routine measures keep borders secure.",
	},
	{operation.ActionBankAccountFreeze, operation.StanceCritical}: {
		Headline: "Family left penniless as accounts frozen overnight",
		Summary:  "{citizen} cannot pay rent after an unexplained freeze. No charges have been filed.",
	},
	{operation.ActionBankAccountFreeze, operation.StanceIndependent}: {
		Headline: "Questions raised over asset freeze targeting {citizen}",
		Summary:  "Banking regulators decline to comment on the order.",
	},
	{operation.ActionArbitraryDetention, operation.StanceCritical}: {
		Headline: "{citizen} disappears into state custody",
		Summary:  "Family members have not been told where {citizen} is held or why.",
	},
	{operation.ActionArbitraryDetention, operation.StanceIndependent}: {
		Headline: "Detention of {citizen} draws scrutiny",
		Summary:  "Authorities cite security concerns but have not released details.",
	},
	{operation.ActionArbitraryDetention, operation.StanceStateFriendly}: {
		Headline: "Suspect detained in ongoing security investigation",
		Summary:  "Officials thank the public for their patience.",
	},
	{operation.ActionHospitalArrest, operation.StanceCritical}: {
		Headline: "Patient arrested from hospital bed",
		Summary:  "Doctors protest after agents remove {citizen} from a recovery ward.",
	},
	{operation.ActionHospitalArrest, operation.StanceIndependent}: {
		Headline: "Hospital arrest of {citizen} prompts medical ethics debate",
		Summary:  "Medical associations question the timing of the arrest.",
	},
	{operation.ActionCurfew, operation.StanceCritical}: {
		Headline: "{neighborhood} placed under lockdown",
		Summary:  "Residents describe empty streets and armed patrols after dark.",
	},
	{operation.ActionCurfew, operation.StanceStateFriendly}: {
		Headline: "Curfew restores calm in {neighborhood}",
		Summary:  "Officials say the temporary measure protects families.",
	},
	{operation.ActionICERaid, operation.StanceCritical}: {
		Headline: "Dawn raids tear families apart in {neighborhood}",
		Summary:  "Neighbors watched as children were separated from their parents.",
	},
	{operation.ActionICERaid, operation.StanceIndependent}: {
		Headline: "Immigration sweep in {neighborhood} leaves dozens detained",
		Summary:  "Community groups are organizing legal aid for the families affected.",
	},
	{operation.ActionICERaid, operation.StanceStateFriendly}: {
		Headline: "Enforcement operation completed in {neighborhood}",
		Summary:  "Authorities report the operation proceeded without incident.",
	},
	{operation.ActionPressBan, operation.StanceCritical}: {
		Headline: "Another newsroom silenced",
		Summary:  "Press freedom organizations condemn the latest broadcast ban.",
	},
	{operation.ActionPressureFiring, operation.StanceCritical}: {
		Headline: "Journalist forced out after government pressure",
		Summary:  "Colleagues say the reporter was working on a story about state surveillance.",
	},
	{operation.ActionDeclareProtestIllegal, operation.StanceCritical}: {
		Headline: "Peaceful gathering in {neighborhood} declared illegal",
		Summary:  "Demonstrators were given minutes to disperse before arrests began.",
	},
	{operation.ActionDeclareProtestIllegal, operation.StanceStateFriendly}: {
		Headline: "Unlawful assembly cleared in {neighborhood}",
		Summary:  "Police restore order after an unauthorized demonstration.",
	},
	{operation.ActionInciteViolence, operation.StanceCritical}: {
		Headline: "Witnesses question who started the violence in {neighborhood}",
		Summary:  "Video shows unfamiliar faces at the front of the crowd moments before the clashes.",
	},
	{operation.ActionInciteViolence, operation.StanceStateFriendly}: {
		Headline: "Rioters attack police in {neighborhood}",
		Summary:  "Officials blame agitators for turning the protest violent.",
	},
	{operation.ActionBookBan, operation.StanceCritical}: {
		Headline: "Book pulled from shelves by government order",
		Summary:  "Authors warn that censorship is spreading.",
	},
}

var genericTemplates = map[operation.Stance]template{
	operation.StanceCritical: {
		Headline: "Government escalates crackdown with {action}",
		Summary:  "Critics warn the measures target ordinary citizens.",
	},
	operation.StanceIndependent: {
		Headline: "Authorities confirm {action}",
		Summary:  "Officials provided few details about the decision.",
	},
	operation.StanceStateFriendly: {
		Headline: "Security services announce {action}",
		Summary:  "The measure is described as routine and necessary.",
	},
}

var backgroundTemplates = map[operation.Stance][]template{
	operation.StanceCritical: {
		{Headline: "Surveillance budget quietly doubles", Summary: "Documents show spending on monitoring programs has grown sharply."},
		{Headline: "Rights groups track rising detentions", Summary: "Advocates count a steady increase in unexplained arrests."},
		{Headline: "Whistleblower alleges data abuse in state programs", Summary: "A former contractor describes lax controls over citizen records."},
	},
	operation.StanceIndependent: {
		{Headline: "Poll shows growing unease over privacy", Summary: "A majority of respondents say they feel watched."},
		{Headline: "Court reviews scope of emergency powers", Summary: "Judges will hear arguments next month."},
		{Headline: "Tech firms asked to share more user data", Summary: "Industry groups are divided over the request."},
	},
}

type exposureStage struct {
	Headline       string
	Summary        string
	AwarenessDelta int
	AngerDelta     int
}

var exposureStages = map[int]exposureStage{
	1: {
		Headline:       "Sources hint at internal surveillance operator",
		Summary:        "Insiders describe an analyst making decisions behind closed doors.",
		AwarenessDelta: 5,
	},
	2: {
		Headline:       "Leaked logs reveal surveillance operator's decisions",
		Summary:        "Partial records show which citizens were targeted and when.",
		AwarenessDelta: 15,
		AngerDelta:     5,
	},
	3: {
		Headline:       "Identity of surveillance operator leaked",
		Summary:        "Full name, photo and decision history are now circulating online.",
		AwarenessDelta: 25,
		AngerDelta:     10,
	},
}
