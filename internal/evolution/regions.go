package evolution

type Region string

const (
	Alola  Region = "alola"
	Galar  Region = "galar"
	Hisui  Region = "hisui"
	Paldea Region = "paldea"
)

// knownRegions is also the tag matching priority.
var knownRegions = []Region{Alola, Galar, Hisui, Paldea}

// VariantIdentity is the regional form that stands in for a species.
type VariantIdentity struct {
	ID   int
	Name string
}

type variantKey struct {
	species string
	region  Region
}

// regionalVariants is hand-curated and incomplete. Pairs missing here fall back
// to the mainland form.
var regionalVariants = map[variantKey]VariantIdentity{
	{"rattata", Alola}:   {10104, "rattata-alola"},
	{"raticate", Alola}:  {10105, "raticate-alola"},
	{"raichu", Alola}:    {10100, "raichu-alola"},
	{"sandshrew", Alola}: {10106, "sandshrew-alola"},
	{"sandslash", Alola}: {10107, "sandslash-alola"},
	{"vulpix", Alola}:    {10101, "vulpix-alola"},
	{"ninetales", Alola}: {10102, "ninetales-alola"},
	{"diglett", Alola}:   {10108, "diglett-alola"},
	{"dugtrio", Alola}:   {10109, "dugtrio-alola"},
	{"meowth", Alola}:    {10103, "meowth-alola"},
	{"persian", Alola}:   {10110, "persian-alola"},
	{"geodude", Alola}:   {10111, "geodude-alola"},
	{"graveler", Alola}:  {10112, "graveler-alola"},
	{"golem", Alola}:     {10113, "golem-alola"},
	{"grimer", Alola}:    {10114, "grimer-alola"},
	{"muk", Alola}:       {10115, "muk-alola"},
	{"exeggutor", Alola}: {10116, "exeggutor-alola"},
	{"marowak", Alola}:   {10117, "marowak-alola"},

	{"meowth", Galar}:     {10161, "meowth-galar"},
	{"ponyta", Galar}:     {10162, "ponyta-galar"},
	{"rapidash", Galar}:   {10163, "rapidash-galar"},
	{"slowpoke", Galar}:   {10164, "slowpoke-galar"},
	{"slowbro", Galar}:    {10165, "slowbro-galar"},
	{"farfetchd", Galar}:  {10166, "farfetchd-galar"},
	{"weezing", Galar}:    {10167, "weezing-galar"},
	{"mr-mime", Galar}:    {10168, "mr-mime-galar"},
	{"articuno", Galar}:   {10169, "articuno-galar"},
	{"zapdos", Galar}:     {10170, "zapdos-galar"},
	{"moltres", Galar}:    {10171, "moltres-galar"},
	{"slowking", Galar}:   {10172, "slowking-galar"},
	{"corsola", Galar}:    {10173, "corsola-galar"},
	{"zigzagoon", Galar}:  {10174, "zigzagoon-galar"},
	{"linoone", Galar}:    {10175, "linoone-galar"},
	{"darumaka", Galar}:   {10176, "darumaka-galar"},
	{"darmanitan", Galar}: {10177, "darmanitan-galar"},
	{"yamask", Galar}:     {10178, "yamask-galar"},
	{"stunfisk", Galar}:   {10179, "stunfisk-galar"},

	{"growlithe", Hisui}:  {10229, "growlithe-hisui"},
	{"arcanine", Hisui}:   {10230, "arcanine-hisui"},
	{"voltorb", Hisui}:    {10231, "voltorb-hisui"},
	{"electrode", Hisui}:  {10232, "electrode-hisui"},
	{"typhlosion", Hisui}: {10233, "typhlosion-hisui"},
	{"qwilfish", Hisui}:   {10234, "qwilfish-hisui"},
	{"sneasel", Hisui}:    {10235, "sneasel-hisui"},
	{"samurott", Hisui}:   {10236, "samurott-hisui"},
	{"lilligant", Hisui}:  {10237, "lilligant-hisui"},
	{"zorua", Hisui}:      {10238, "zorua-hisui"},
	{"zoroark", Hisui}:    {10239, "zoroark-hisui"},
	{"braviary", Hisui}:   {10240, "braviary-hisui"},
	{"sliggoo", Hisui}:    {10241, "sliggoo-hisui"},
	{"goodra", Hisui}:     {10242, "goodra-hisui"},
	{"avalugg", Hisui}:    {10243, "avalugg-hisui"},
	{"decidueye", Hisui}:  {10244, "decidueye-hisui"},
}
