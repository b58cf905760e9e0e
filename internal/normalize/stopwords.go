package normalize

import "strings"

// stopwords is the built-in English stopword set, keyed lowercase.
// Single letters are included wholesale; the revert rule in
// StripStopwords protects stems that consist of nothing else.
var stopwords = func() map[string]bool {
	m := make(map[string]bool, 300)
	for c := 'a'; c <= 'z'; c++ {
		m[string(c)] = true
	}
	for _, w := range strings.Fields(stopwordList) {
		m[w] = true
	}
	return m
}()

const stopwordList = `
a able about above across actually after afterwards again against ago all
almost alone along already also although always am among amongst an and
another any anybody anyhow anymore anyone anything anyway anywhere are
around as aside at away back be became because become becomes becoming
been before beforehand behind being below beside besides better between
beyond both brief but by came can cannot cant certain certainly come
comes concerning consequently consider contain containing contains could
couldnt course currently despite did didnt different do does doesnt doing
done dont down during each either else elsewhere enough entirely
especially etc even ever every everybody everyone everything everywhere
exactly except far few followed following follows for former formerly
forth from further furthermore gave get gets getting give given gives
going gone got had hadnt has hasnt have havent having he hello hence her
here hereafter hereby herein hers herself him himself his hither how
however if immediately in indeed inner inside instead into inward is isnt
it its itself just keep keeps kept knew know known knows largely last
lately later latter latterly least less lest let lets like liked likely
likewise little long longer look looking looks made mainly make makes
making many may maybe me mean means meantime meanwhile merely might more
moreover most mostly much must my myself namely near nearly necessarily
necessary need needed needs neither never nevertheless next no nobody
none nonetheless nor normally not nothing now nowhere of off often oh ok
okay on once only onto or other others otherwise ought our ours ourselves
out outside over overall own particular particularly per perhaps please
plus possible possibly presumably previously probably put puts quite
rather really reasonably recent recently regarding regardless regards
relatively respectively right said same saw say saying says see seeing
seem seemed seeming seems seen self selves sensible several shall she
should since so some somebody somehow someone something sometime
sometimes somewhat somewhere soon still such sure take taken tell tends
than thank thanks that thats the their theirs them themselves then thence
there thereafter thereby therefore therein thereupon these they thing
things think this those though through throughout thru thus til till to
together too took toward towards tried tries truly try trying twice under
unfortunately unless unlike unlikely until unto up upon us used useful
uses using usually various very via vs want wanted wants was wasnt way we
well went were werent what whatever when whence whenever where whereafter
whereas whereby wherein whereupon wherever whether which while whither
who whoever whole whom whose why will willing wish with within without
wonder wont would wouldnt yes yet you your yours yourself yourselves
`
