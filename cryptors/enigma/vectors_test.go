package enigma

// turingText opens "Computing Machinery and Intelligence" (A. M. Turing, 1950).
const turingText = "IPROPOSETOCONSIDERTHEQUESTIONCANMACHINESTHINKTHISSHOULDBEGINWITHDEFINITIONSOFTHEMEANINGOFTHETERM" +
	"SMACHINEANDTHINKTHEDEFINITIONSMIGHTBEFRAMEDSOASTOREFLECTSOFARASPOSSIBLETHENORMALUSEOFTHEWORDSBUT" +
	"THISATTITUDEISDANGEROUSIFTHEMEANINGOFTHEWORDSMACHINEANDTHINKARETOBEFOUNDBYEXAMININGHOWTHEYARECOM" +
	"MONLYUSEDITISDIFFICULTTOESCAPETHECONCLUSIONTHATTHEMEANINGANDTHEANSWERTOTHEQUESTIONCANMACHINESTHI" +
	"NKISTOBESOUGHTINASTATISTICALSURVEYSUCHASAGALLUPPOLLBUTTHISISABSURDINSTEADOFATTEMPTINGSUCHADEFINI" +
	"TIONISHALLREPLACETHEQUESTIONBYANOTHERWHICHISCLOSELYRELATEDTOITANDISEXPRESSEDINRELATIVELYUNAMBIGU" +
	"OUSWORDS"

// longVector is 500 letter As through B III VI VIII 12 14 20 DFJ.
const longVector = "YJKJMFQKPCUOCKTEZQVXYZJWJFROVJMWJVXRCQYFCUVBRELVHRWGPYGCHVLBVJEVTTYVMWKJFOZHLJEXYXRDBEVEHVXKQSBP" +
	"YZNIQDCBGTDDWZQWLHIBQNTYPIEBMNINNGMUPPGLSZCBRJULOLNJSOEDLOBXXGEVTKCOTTLDZPHBUFKLWSFSRKOMXKZELBDJ" +
	"NRUDUCOTNCGLIKVKMHHCYDEKFNOECFBWRIEFQQUFXKKGNTSTVHVITVHDFKIJIHOGMDSQUFMZCGGFZMJUKGDNDSNSJKWKENIR" +
	"QKSUUHJYMIGWWNMIESFRCVIBFSOUCLBYEEHMESHSGFDESQZJLTORNFBIFUWIFJTOPVMFQCFCFPYZOJFQRFQZTTTOECTDOOYT" +
	"GVKEWPSZGHCTQRPGZQOVTTOIEGGHEFDOVSUQLLGNOOWGLCLOWSISUGSVIHWCMSIUUSBWQIGWEWRKQFQQRZHMQJNKQTJFDIJY" +
	"HDFCWTHXUOOCVRCVYOHL"

type vector struct {
	name      string
	rotors    [3]int
	rings     [3]int
	positions [3]int
	plugs     string
	input     string
	output    string
}

var vectors = []vector{
	{
		name:      "varied rotors",
		rotors:    [3]int{7, 5, 4},
		rings:     [3]int{1, 2, 3},
		positions: [3]int{10, 5, 12},
		plugs:     "",
		input:     "ABCDEFGHIJKLMNOPQRSTUVWXYZAAAAAAAAAAAAAAAAAAAAAAAAAABBBBBBBBBBBBBBBBBBBBBBBBBBABCDEFGHIJKLMNOPQR" +
		"STUVWXYZ",
		output:    "FOTYBPKLBZQSGZBOPUFYPFUSETWKNQQHVNHLKJZZZKHUBEJLGVUNIOYSDTEZJQHHAOYYZSENTGXNJCHEDFHQUCGCGJBURNSE" +
		"DZSEPLQP",
	},
	{
		name:      "six plugs",
		rotors:    [3]int{4, 6, 3},
		rings:     [3]int{0, 0, 0},
		positions: [3]int{0, 10, 6},
		plugs:     "BM DH RS KN GZ FQ",
		input:     "WRBHFRROSFHBCHVBENQFAGNYCGCRSTQYAJNROJAKVKXAHGUZHZVKWUTDGMBMSCYQSKABUGRVMIUOWAPKCMHYCRTSDEYTNJLV" +
		"WNQY",
		output:    "FYTIDQIBHDONUPAUVPNKILDHDJGCWFVMJUFNJSFYZTSPITBURMCJEEAMZAZIJMZAVFCTYTKYORHYDDSXHBLQWPJBMSSWIPSW" +
		"LENZ",
	},
	{
		name:      "ten plugs",
		rotors:    [3]int{1, 2, 3},
		rings:     [3]int{5, 5, 4},
		positions: [3]int{0, 1, 20},
		plugs:     "AG HR YT KI FL WE NM SD OP QJ",
		input:     "RNXYAZUYTFNQFMBOLNYNYBUYPMWJUQSBYRHPOIRKQSIKBKEKEAJUNNVGUQDODVFQZHASHMQIHSQXICTSJNAUVZYIHVBBARPJ" +
		"ADRH",
		output:    "CFBJTPYXROYGGVTGBUTEBURBXNUZGGRALBNXIQHVBFWPLZQSCEZWTAWCKKPRSWOGNYXLCOTQAWDRRKBCADTKZGPWSTNYIJGL" +
		"VIUQ",
	},
	{
		name:      "turing five plugs",
		rotors:    [3]int{2, 5, 3},
		rings:     [3]int{12, 2, 20},
		positions: [3]int{7, 4, 19},
		plugs:     "AF TV KO BL RW",
		input:     turingText,
		output:    "OZLUDYAKMGMXVFVARPMJIKVWPMBVWMOIDHYPLAYUWGBZFAFAFUQFZQISLEZMYPVBRDDLAGIHIFUJDFADORQOOMIZPYXDCBPW" +
		"DSSNUSYZTJEWZPWFBWBMIEQXRFASZLOPPZRJKJSPPSTXKPUWYSKNMZZLHJDXJMMMDFODIHUBVCXMNICNYQBNQODFQLOGPZYX" +
		"RJMTLMRKQAUQJPADHDZPFIKTQBFXAYMVSZPKXIQLOQCVRPKOBZSXIUBAAJBRSNAFDMLLBVSYXISFXQZKQJRIQHOSHVYJXIFU" +
		"ZRMXWJVWHCCYHCXYGRKMKBPWRDBXXRGABQBZRJDVHFPJZUSEBHWAEOGEUQFZEEBDCWNDHIAQDMHKPRVYHQGRDYQIOEOLUBGB" +
		"SNXWPZCHLDZQBWBEWOCQDBAFGUVHNGCIKXEIZGIZHPJFCTMNNNAUXEVWTWACHOLOLSLTMDRZJZEVKKSSGUUTHVXXODSKTFGR" +
		"UEIIXVWQYUIPIDBFPGLBYXZTCOQBCAHJYNSGDYLREYBRAKXGKQKWJEKWGAPTHGOMXJDSQKYHMFGOLXBSKVLGNZOAXGVTGXUI" +
		"VFTGKPJU",
	},
	{
		name:      "turing ten plugs",
		rotors:    [3]int{2, 5, 3},
		rings:     [3]int{12, 2, 20},
		positions: [3]int{7, 4, 19},
		plugs:     "AG HR YT KI FL WE NM SD OP QJ",
		input:     turingText,
		output:    "KSKAXWRVGKNPSCZTWDYNDTYJXDQTFNZLLCTIGQDVADLCTCNUHGEYZSYRTRHMRYGXBJRUIDGFULWRLRKQUWZKKMYBEVZYLGGD" +
		"DAEMYOPCXUBDGLBQPRUYICDYNXUPDLPUNMUVCIHBAATQKCECCPNXEDZDWYDUWORMHZODTOIDKAKWSHVFTPDAYJJYQYZHLATG" +
		"FLRKTUZNXLRDEPHKFONMYKHDWXPGULDJYDRLBNSYOXSJFTNIQXCLROHMJXRWXINJESYAQYSQYSNGMCUBMRPLFTZFATBYAKTL" +
		"AWMZEQLLHDLAZASJWOPNHOPWWDFUFWYAOJLAERSPUXCRVYGJLXFKOLLIOUZLFKLGFINYELFROZNPRRSACRAMCXKKESQKCUUR" +
		"ECJXYHDIHWZWTJGCZKNYQXHBFUGQVAOCQFIKZLSYTBSFRVTGUJBEXMERROWZMOFIFSUTPEWCYPMFUYHTTOEJZBXXCFSKPDGD" +
		"HMXROXREFONJTEDGGRAPUXCKJKXYNJXTZIIZOREMWYHILARLNUDLRFFGIACXSQRMNCDNJODUERUBNTAIQQUUWPEWXYTLQAVK" +
		"FGAYUJBW",
	},
	{
		name:      "turing no plugs",
		rotors:    [3]int{2, 5, 3},
		rings:     [3]int{12, 2, 20},
		positions: [3]int{7, 4, 19},
		plugs:     "",
		input:     turingText,
		output:    "KZEQDMFOESMPTATFWQYJIOTRPWLHRMWIDJYPBFYUDGLZFJAFAUQFZAIHBEZMUPVLWDKBFGNHRAUNLWFDKWKKKMIGXAXDZLSR" +
		"DSCNUSYZMJEPZPRQRRLMIVQXWEFPZBKPPZEVORHXPSVXKHUEDKOQIZZOHWPRPUMMVAKDYMUHTCXSZIQFYQLAJADASYTGPGYN" +
		"FJMVICNOMFUQJPFWHDZUSIOVYBAXFYJTSZPKSXQBHMZTWPLKLZSXQULUFJLQBCFWQDBPVTSYTISAHQZOQJWIJCSSHTLZXIJU" +
		"ZLMDRJTRHCKYHCXKPWOMMGXLWDLHXWYFLQZZWYDTHUPNZSQSLHRFKKGEUDAZDELGCRGDAOQCDMHOPWVYFQGEDYPIKEKBUFGL" +
		"SHXRYESHBHZQLMLECKFPGLFLGUGKNGXCOXEIZGZZUPRFTVMNLJCWXOVRVRFCOPBKGSBVMFWBJPVWWYSSGNUVHTXXKYSOJAGW" +
		"ZECIXTRCFECPIERAPRBLYXZVPKBLMFDJCJSGFIBWEYLWFJNGOWOWJFZJGFNQHEJMXJDSQOBHMAGKBXNSAOOGEZAFXGPVJXUI" +
		"BAVUKFJU",
	},
}
