package playsheet

// Section names a top-level block of a playsheet.
type Section string

const (
	SectionTeamInfo     Section = "team_info"
	SectionOffense      Section = "offense"
	SectionDefense      Section = "defense"
	SectionSpecialTeams Section = "special_teams"
)

// Play names shared by every team. A playsheet keys its outcome tables by these names.
const (
	PlayKickoff       = "Kickoff"
	PlayOnsideKick    = "Onside Kick"
	PlayKickoffReturn = "Kickoff Return"

	PlayLinePlunge = "Line Plunge"
	PlayOffTackle  = "Off Tackle"
	PlayEndRun     = "End Run"
	PlayDraw       = "Draw"
	PlayScreen     = "Screen"
	PlayShortPass  = "Short Pass"
	PlayMediumPass = "Medium Pass"
	PlayLong       = "Long"
	PlaySideline   = "Sideline"

	PlayFieldGoal = "Field Goal"
	PlayPunt      = "Punt"

	PlayStandard = "Standard"
	PlayNickel   = "Nickel"
	PlayDime     = "Dime"
	PlayPrevent  = "Prevent"
	PlayBlitz    = "Blitz"

	PlayTwoPoint   = "2pt Attempt"
	PlayExtraPoint = "XP"
)

var (
	kickoffPlays             = []string{PlayKickoff, PlayOnsideKick}
	kickoffReturnPlays       = []string{PlayKickoffReturn}
	offensePlays             = []string{PlayLinePlunge, PlayOffTackle, PlayEndRun, PlayDraw, PlayScreen, PlayShortPass, PlayMediumPass, PlayLong, PlaySideline}
	specialTeamsOffensePlays = []string{PlayFieldGoal, PlayPunt}
	defensePlays             = []string{PlayStandard, PlayNickel, PlayDime, PlayPrevent, PlayBlitz}
	postTouchdownPlays       = []string{PlayTwoPoint, PlayExtraPoint}
)

// KickoffPlays returns the plays open to the kicking side.
func KickoffPlays() []string { return clone(kickoffPlays) }

// KickoffReturnPlays returns the plays open to the receiving side.
func KickoffReturnPlays() []string { return clone(kickoffReturnPlays) }

// OffensePlays returns the scrimmage plays read from the offense section.
func OffensePlays() []string { return clone(offensePlays) }

// SpecialTeamsOffensePlays returns the kicking plays an offense may call from scrimmage.
func SpecialTeamsOffensePlays() []string { return clone(specialTeamsOffensePlays) }

// DefensePlays returns the plays open to the defending side.
func DefensePlays() []string { return clone(defensePlays) }

// PostTouchdownPlays returns the conversion plays open to a team that just scored.
func PostTouchdownPlays() []string { return clone(postTouchdownPlays) }

// SectionFor classifies a play name into the playsheet section holding its table.
// Kicks, returns and conversions are all special-teams tables.
func SectionFor(play string) (Section, bool) {
	switch {
	case contains(offensePlays, play):
		return SectionOffense, true
	case contains(defensePlays, play):
		return SectionDefense, true
	case contains(kickoffPlays, play),
		contains(kickoffReturnPlays, play),
		contains(specialTeamsOffensePlays, play),
		contains(postTouchdownPlays, play):
		return SectionSpecialTeams, true
	default:
		return "", false
	}
}

func contains(plays []string, play string) bool {
	for _, p := range plays {
		if p == play {
			return true
		}
	}
	return false
}

func clone(plays []string) []string {
	out := make([]string, len(plays))
	copy(out, plays)
	return out
}
