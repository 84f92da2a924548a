package codec

// dcsCodes is the fixed 105-entry DCS code list. Sub-audio table index i
// (0..209) maps to dcsCodes[i] Normal for i < 105, and dcsCodes[i-105]
// Inverted for i >= 105 — D023N at index 0 through D754I at index 209.
var dcsCodes = [105]string{
	"023", "025", "026", "031", "032", "043", "047", "051", "054", "065",
	"071", "072", "073", "074", "114", "115", "116", "122", "125", "131",
	"132", "134", "143", "145", "152", "155", "156", "162", "165", "172",
	"174", "205", "212", "223", "225", "226", "243", "244", "245", "246",
	"251", "252", "255", "261", "263", "265", "266", "271", "274", "306",
	"311", "315", "325", "331", "332", "343", "346", "351", "356", "364",
	"365", "371", "411", "412", "413", "423", "431", "432", "445", "446",
	"452", "454", "455", "462", "464", "465", "466", "503", "506", "516",
	"523", "526", "532", "546", "565", "606", "612", "624", "627", "631",
	"632", "654", "662", "664", "703", "712", "723", "731", "732", "734",
	"743", "754", "763", "764", "765",
}
