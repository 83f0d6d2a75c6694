package generator

const msgPrefix = "page-contributing-translation-program-acknowledgements-"

// Message identifiers used by the page.
const (
	msgMetaTitle         = msgPrefix + "meta-title"
	msgMetaDescription   = msgPrefix + "meta-description"
	msgPageTitle         = msgPrefix + "acknowledgement-page-title"
	msgPage1             = msgPrefix + "acknowledgement-page-1"
	msgPage2             = msgPrefix + "acknowledgement-page-2"
	msgPage3             = msgPrefix + "acknowledgement-page-3"
	msgPageLink          = msgPrefix + "acknowledgement-page-link"
	msgPage4             = msgPrefix + "acknowledgement-page-4"
	msgHeroAlt           = msgPrefix + "hero-image-alt"
	msgLeaderboardTitle  = msgPrefix + "translation-leaderboard-title"
	msgLeaderboard1      = msgPrefix + "translation-leaderboard-1"
	msgMonthView         = msgPrefix + "translation-leaderboard-month-view"
	msgQuarterView       = msgPrefix + "translation-leaderboard-quarter-view"
	msgAllTimeView       = msgPrefix + "translation-leaderboard-all-time-view"
	msgTranslator        = msgPrefix + "translation-leaderboard-translator"
	msgTotalWords        = msgPrefix + "translation-leaderboard-total-words"
	msgWords             = msgPrefix + "translation-leaderboard-words"
	msgLanguages         = msgPrefix + "translation-leaderboard-languages"
	msgShowMore          = msgPrefix + "translation-leaderboard-show-more"
	msgEmpty             = msgPrefix + "translation-leaderboard-empty"
	msgUpdated           = msgPrefix + "translation-leaderboard-updated"
	msgTranslatorsTitle  = msgPrefix + "our-translators-title"
	msgTranslators1      = msgPrefix + "our-translators-1"
	msgViewAll           = msgPrefix + "our-translators-view-all"
	msgCTA               = msgPrefix + "our-translators-cta"
	msgCertTitle         = msgPrefix + "cert-title"
	msgCert1             = msgPrefix + "cert-1"
	msgCert2             = msgPrefix + "cert-2"
	msgCert3             = msgPrefix + "cert-3"
	msgPOAPTitle         = msgPrefix + "poaps-title"
	msgPOAP1             = msgPrefix + "1"
	msgPOAP2             = msgPrefix + "2"
	msgPOAP3             = msgPrefix + "3"
	msgPOAP4             = msgPrefix + "4"
	msgHowToClaimTitle   = msgPrefix + "how-to-claim-title"
	msgHowToClaim1       = msgPrefix + "how-to-claim-1"
	msgHowToClaimDiscord = msgPrefix + "how-to-claim-1-discord"
	msgHowToClaim2       = msgPrefix + "how-to-claim-2"
	msgHowToClaim3       = msgPrefix + "how-to-claim-3"
	msgHowToClaim4       = msgPrefix + "how-to-claim-4"

	msgSiteTitle      = "site-title"
	msgFeedbackPrompt = "feedback-card-prompt-page"
	msgYes            = "yes"
	msgNo             = "no"
	msgToggleDark     = "toggle-dark-mode"
	msgToggleLight    = "toggle-light-mode"
	msgDateLayout     = "date-layout"
)

// MessageIDs lists every message identifier the page resolves, breadcrumb
// labels included.
func MessageIDs() []string {
	return []string{
		msgMetaTitle, msgMetaDescription,
		msgPageTitle, msgPage1, msgPage2, msgPage3, msgPageLink, msgPage4, msgHeroAlt,
		msgLeaderboardTitle, msgLeaderboard1,
		msgMonthView, msgQuarterView, msgAllTimeView,
		msgTranslator, msgTotalWords, msgWords, msgLanguages, msgShowMore, msgEmpty, msgUpdated,
		msgTranslatorsTitle, msgTranslators1, msgViewAll, msgCTA,
		msgCertTitle, msgCert1, msgCert2, msgCert3,
		msgPOAPTitle, msgPOAP1, msgPOAP2, msgPOAP3,
		msgHowToClaimTitle, msgHowToClaim1, msgHowToClaimDiscord, msgHowToClaim2, msgHowToClaim3, msgHowToClaim4,
		msgPOAP4,
		msgSiteTitle, msgFeedbackPrompt, msgYes, msgNo, msgToggleDark, msgToggleLight, msgDateLayout,
		"breadcrumb-home", "breadcrumb-contributing", "breadcrumb-translation-program", "breadcrumb-acknowledgements",
	}
}
