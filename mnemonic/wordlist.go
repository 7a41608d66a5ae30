package mnemonic

// wordList is the fixed 1626-word dictionary used to encode a 32-byte
// seed as a 25-word Electrum-style mnemonic phrase. Words are kept sorted
// so indexOf can binary-search.
var wordList = [1626]string{
	"baba", "babug", "baci", "badepe", "bafe", "baga", "bagaji", "bagi",
	"bajo", "bajonav", "balebu", "bani", "bari", "basa", "bateb", "batib",
	"bavito", "bazot", "beba", "bece", "becu", "bede", "bejek", "beji",
	"bejovaz", "belo", "belu", "bemozat", "bemu", "bepi", "beti", "betijeg",
	"betuto", "bevefi", "beze", "bezure", "bidi", "bifi", "bifose", "bifula",
	"bifuro", "binuc", "bipe", "bipo", "bipuzis", "biru", "biso", "bito",
	"bizu", "bizujeg", "bobat", "bobi", "bobo", "bobucek", "bobuvi", "bodobe",
	"bodopi", "bogap", "bogurul", "boju", "boka", "boki", "bolo", "boni",
	"bopiso", "bori", "boru", "bosa", "botilo", "botu", "bozim", "buba",
	"bubirep", "buce", "buco", "budile", "buje", "bujeru", "bujose", "bulo",
	"bulobo", "bupalas", "bupo", "busi", "butasel", "buteg", "butep", "buve",
	"buvefi", "buzenol", "buzo", "caceji", "cado", "cafe", "cagev", "cagi",
	"cajav", "cakulup", "calag", "calimi", "calo", "caneb", "caniji", "capaga",
	"capoz", "care", "carek", "casajer", "case", "casese", "casot", "catan",
	"cati", "catu", "cavi", "cavoga", "cavudu", "cazi", "cazop", "cebo",
	"cecor", "cede", "cedi", "cefi", "cegaco", "cegi", "cegibi", "ceja",
	"cejara", "cejuka", "ceke", "cekotog", "cekuves", "celicu", "celu", "cemij",
	"cenise", "ceri", "cerus", "cesi", "cevi", "cibape", "cicasac", "cicemib",
	"cifazoc", "cimem", "cimuti", "cina", "cine", "cinudip", "cipakos", "cipo",
	"cipuj", "cire", "cisi", "cita", "citazi", "citis", "civi", "civu",
	"cizagu", "cobe", "cocuco", "cofavi", "cofazu", "cofe", "cofuv", "cogi",
	"cogilen", "cokino", "coku", "colu", "comu", "comula", "conez", "conu",
	"cope", "copetu", "copu", "copuru", "cotefi", "coto", "cova", "cozu",
	"cuce", "cucono", "cudasi", "cudatiz", "cude", "cujip", "cuju", "cukag",
	"cuko", "culile", "cunode", "cunose", "cunut", "cupof", "cuvo", "cuza",
	"dabut", "dacu", "dado", "dadove", "dafu", "dajo", "dali", "dapev",
	"dara", "dares", "dasa", "dasamep", "dato", "datodo", "davova", "daze",
	"defela", "dekes", "deki", "dekiri", "dekulap", "deni", "denivu", "depiz",
	"depu", "deripoc", "desake", "desiga", "detipe", "devalu", "devavej", "devo",
	"dezel", "dezi", "dibum", "dicok", "dicu", "difet", "difip", "difu",
	"dije", "dijijej", "dike", "diki", "dila", "dilib", "dimal", "dina",
	"dinuc", "dipizod", "dipofa", "dipul", "dirola", "ditamol", "diza", "dizuvi",
	"dobe", "dodiref", "dofi", "dofu", "doje", "dojegu", "dojemon", "doke",
	"dokom", "dolupi", "domod", "domubeb", "donitef", "donol", "donu", "dopa",
	"dopu", "doroc", "dosoza", "dotetus", "doze", "duba", "duca", "duce",
	"ducit", "ducocu", "ducu", "dudo", "dufava", "duka", "duki", "dukimu",
	"dulo", "duna", "dunib", "dupep", "durubo", "dusik", "dusize", "dutal",
	"duvele", "duzonil", "duzu", "faba", "faci", "facirep", "facuj", "fafe",
	"fafo", "fafud", "fagiv", "fagole", "fajoco", "faku", "faliti", "famepo",
	"fane", "fanitu", "fanivon", "fapog", "fatadu", "fatot", "favufe", "faza",
	"fazaje", "fazo", "febifaz", "fecov", "fedof", "fegeba", "fegod", "fekobo",
	"felara", "femu", "feni", "fepodob", "fetela", "fetiki", "feto", "feve",
	"fevo", "fezi", "fezo", "fibip", "ficilo", "fida", "fido", "fifelu",
	"fifi", "figase", "figim", "figu", "fijava", "fijime", "fikibe", "fikinu",
	"finot", "fire", "firezo", "fisig", "fisola", "fito", "fitut", "fizi",
	"fizik", "fobev", "fobo", "focic", "foco", "foda", "fodal", "fofed",
	"fofuv", "fojufi", "foku", "fokubad", "fola", "fome", "fomipi", "fomo",
	"fonef", "fonu", "fopa", "fopipo", "fopolad", "fore", "fotif", "fotu",
	"fovo", "fovove", "fovul", "fubafu", "fubo", "fuboni", "fubul", "fucib",
	"fucuku", "fudig", "fudumej", "fugo", "fujir", "fukaga", "fuku", "fulazec",
	"fupode", "fupu", "fupumo", "furano", "futag", "futid", "futo", "gabidu",
	"gabulo", "gacajo", "gacala", "gaci", "gacuf", "gado", "gafit", "gafiz",
	"gage", "gaji", "gaki", "galab", "gale", "gamig", "gamun", "gapa",
	"gape", "gapozim", "gare", "garocul", "garor", "garu", "gasi", "gasosi",
	"gave", "gavuk", "gavunel", "gaziza", "gebucug", "gece", "gedama", "gefa",
	"gefiri", "gefo", "gejal", "gekoci", "geloci", "gene", "gepalo", "gepaz",
	"geputa", "gera", "gerupet", "geta", "gevi", "gevizan", "gibi", "gici",
	"gicone", "gidu", "gifido", "gigisid", "gikez", "gilasis", "ginome", "gipobo",
	"giromo", "gisa", "gisavaf", "gisifa", "giteneg", "gitun", "givace", "givoc",
	"gobet", "goboze", "gobu", "godo", "gofarad", "gokirum", "golazi", "gomol",
	"gonazaf", "gone", "gopat", "gopeneg", "gosozo", "govaz", "govi", "govo",
	"gozi", "gozisep", "gozoj", "gubazal", "guco", "guda", "gudel", "gufi",
	"gufifu", "gufu", "gufusi", "guge", "guji", "gujo", "gujob", "gula",
	"gulec", "gulo", "guloki", "gume", "gune", "gunu", "gunude", "gupami",
	"gupuco", "gurid", "guza", "guzana", "jabe", "jacone", "jade", "jajeg",
	"jakaka", "jake", "jaku", "jame", "jameme", "jamevo", "japac", "jare",
	"jases", "jate", "javo", "javosa", "jazunit", "jecu", "jegit", "jekasab",
	"jeme", "jemocon", "jemum", "jepale", "jepo", "jepodaf", "jese", "jesepi",
	"jeso", "jete", "jevev", "jeza", "jezi", "jicetu", "jido", "jifef",
	"jifukid", "jigona", "jika", "jike", "jiki", "jimom", "jinez", "jini",
	"jipa", "jisa", "jitigi", "jiva", "jivizi", "jizovi", "jobanib", "jobomez",
	"jocu", "jofe", "jofu", "joje", "jokab", "jolu", "jone", "jopefu",
	"joper", "jopi", "jopuru", "joriji", "joroca", "joso", "jotu", "jotus",
	"joza", "jozu", "juba", "jubave", "jubo", "jubukur", "juca", "jucavav",
	"jucise", "jucuta", "judecol", "judu", "jufaf", "jufaj", "jufi", "juga",
	"jugu", "jujagaj", "junec", "jupa", "jura", "juren", "juru", "jusu",
	"jusumo", "juveca", "juvi", "juza", "kabaji", "kabepoj", "kabika", "kacedu",
	"kade", "kado", "kagona", "kagu", "kagup", "kaju", "kajuja", "kali",
	"kanu", "karazu", "karoku", "kava", "kavif", "kaze", "kazi", "kazuve",
	"kebip", "kebuv", "keco", "kecot", "keda", "kegikab", "kegure", "kejopu",
	"kekos", "keli", "kenede", "kenu", "kepac", "kepi", "kepic", "kepo",
	"kepoc", "kera", "keri", "kese", "keseb", "kesu", "keti", "keto",
	"kevazo", "kevima", "kezuke", "kibi", "kibuta", "kicazi", "kicoz", "kidafag",
	"kifad", "kifedu", "kifo", "kifumu", "kiga", "kigare", "kigeki", "kimas",
	"kimekil", "kimimef", "kire", "kiro", "kisa", "kita", "kite", "kiti",
	"kivo", "kize", "kizot", "kizub", "kizujaj", "kobes", "koca", "koci",
	"kofo", "kogi", "kokabal", "koko", "kome", "komu", "konuz", "kopu",
	"korukem", "kosukot", "kota", "kozufu", "kuca", "kufa", "kufe", "kugecaj",
	"kugo", "kukivu", "kuku", "kulozal", "kumase", "kumez", "kumido", "kupigem",
	"kuricub", "kusero", "kutubi", "kutudo", "kuzanov", "laco", "lado", "lafal",
	"laga", "lagi", "lagom", "lakak", "lakok", "lakoral", "lali", "lamif",
	"lamok", "lanero", "lapuf", "lara", "laroke", "lasoke", "lasu", "latiguc",
	"latonur", "lavot", "lavu", "lazut", "leci", "legike", "lego", "lekove",
	"lelan", "lemo", "lemu", "leno", "lenu", "lepi", "lerop", "leta",
	"lete", "levo", "levumi", "lezagu", "lezi", "lezo", "lifu", "lige",
	"ligi", "ligogi", "ligosa", "lije", "lijegi", "limalo", "linanes", "linatev",
	"lini", "lipe", "lipumo", "lisak", "lise", "liti", "lize", "loci",
	"locik", "lode", "lodi", "lodol", "lodu", "lofi", "lofo", "loga",
	"logakej", "logi", "logo", "logor", "lojami", "lojose", "loko", "loku",
	"lolez", "lolu", "lona", "lora", "lore", "loru", "lota", "lotake",
	"lotenu", "lovi", "loza", "lozip", "lube", "lubuvu", "lucap", "luda",
	"lufum", "lugo", "lujod", "lukevut", "lulo", "luna", "lunape", "lunes",
	"luni", "lura", "lusat", "luse", "lusi", "lusib", "luso", "luvar",
	"luzoru", "mabagu", "macen", "maci", "macor", "mafuse", "magiza", "makamu",
	"malacug", "maleba", "mamisob", "mane", "manepe", "mapolij", "mapu", "mari",
	"maro", "masab", "matono", "matu", "matuge", "mavi", "mazi", "mebuba",
	"meco", "mefa", "mefunu", "megu", "meja", "mejasi", "meju", "mekukoc",
	"memez", "meni", "meridaj", "mero", "meru", "mesep", "metofa", "metola",
	"mevev", "mibo", "mica", "mice", "midez", "midofi", "mifi", "mifiri",
	"mifor", "mijav", "miji", "mijo", "mile", "milode", "milogo", "milu",
	"mima", "mipogi", "mire", "miro", "misi", "misu", "mivacup", "mive",
	"mivoma", "mizega", "mizeniv", "mobiv", "mobo", "moci", "mocoze", "mocuzi",
	"modo", "modoc", "mofi", "mofu", "mofur", "mogodu", "mogun", "moji",
	"mole", "molo", "momepa", "monuli", "mopa", "mopij", "motir", "mozam",
	"muca", "muci", "mucorip", "mucur", "mufo", "muko", "mula", "mulo",
	"mumiguf", "munife", "munub", "mupo", "muru", "musa", "musup", "muta",
	"mutipa", "muza", "naca", "nace", "nafese", "nafu", "nages", "nakalo",
	"naki", "nako", "nalota", "nalu", "namuzib", "nani", "napa", "narati",
	"narop", "natak", "naver", "navi", "nazime", "nazoja", "nazoz", "nece",
	"nedo", "nefe", "nefo", "negac", "negajok", "negu", "neja", "nejev",
	"nejo", "nekacu", "nenida", "nenivu", "neragor", "nere", "neve", "nevik",
	"nezocej", "nezuget", "niba", "nibu", "nicu", "nifaba", "nigo", "nigokep",
	"nigu", "nijemat", "nijo", "nikutu", "nile", "nilif", "nimi", "ninac",
	"nine", "nipi", "nipo", "nise", "nisok", "nitife", "nito", "nizava",
	"nizej", "nobito", "nocep", "noci", "nodiji", "noga", "nogu", "noju",
	"nojusi", "noki", "nokoge", "noku", "nolaf", "nono", "nopin", "nopob",
	"nosa", "nosevif", "notole", "nova", "nove", "novo", "nozit", "nuca",
	"nucisac", "nucu", "nudo", "nududuz", "nufa", "nufe", "nufig", "nujibe",
	"nukedu", "nukeg", "nuna", "nupi", "nures", "nuri", "nurucec", "nusejo",
	"nute", "nuva", "nuvi", "nuvifan", "nuvigoz", "nuzite", "pabuj", "padic",
	"pake", "pala", "pami", "pamig", "panicam", "papucu", "pareki", "pari",
	"patiz", "patuve", "pavet", "paviruf", "pazo", "pebo", "pece", "peculef",
	"pecup", "pedevel", "pega", "pegac", "peji", "pema", "perisi", "peru",
	"peti", "petib", "pevet", "pezo", "pibe", "pidojo", "pifef", "pifo",
	"pifoce", "pige", "pijuj", "pike", "pikej", "pile", "pipa", "pipo",
	"pire", "pirefag", "pisa", "pivaced", "pivuz", "piza", "pobado", "pobe",
	"pobo", "poco", "podi", "podik", "podisi", "podu", "pofek", "pofoli",
	"pogeg", "pogu", "poguvo", "poguze", "pojim", "pokefa", "pokev", "pola",
	"polit", "pomiro", "ponigab", "potumu", "povut", "pozefe", "pubolap", "puco",
	"pucok", "pude", "pufi", "pufulu", "pugi", "pugoli", "pukido", "puli",
	"pumav", "puna", "pusira", "puvu", "puzacu", "puzet", "raba", "rabe",
	"rabu", "radavi", "radegor", "rafag", "ragop", "rajo", "raku", "ralib",
	"ramak", "ramo", "rani", "rare", "raren", "rasopef", "reben", "redipu",
	"rego", "rejuru", "rela", "relivu", "remava", "remilo", "rener", "repiti",
	"repu", "rera", "reroco", "resebos", "resi", "reva", "reze", "rifa",
	"rifipe", "rifu", "rige", "rijiva", "rikobu", "rimap", "rini", "ripal",
	"ripodas", "riruro", "risalac", "rise", "ritise", "rito", "ritucuv", "rivaru",
	"rivi", "rizi", "robo", "rocal", "rode", "roguk", "rolene", "romama",
	"ropo", "rore", "rosa", "rotini", "rotur", "rovarat", "rovi", "rovic",
	"rozi", "rube", "rubud", "rudise", "ruga", "rugide", "rujuzen", "ruke",
	"ruki", "rukini", "ruku", "rulig", "rulojo", "rumuse", "rune", "runit",
	"runo", "runu", "rupegu", "rupemi", "rurulus", "ruta", "rutaci", "rute",
	"ruti", "ruvi", "ruvica", "saca", "sacib", "sadi", "sadok", "sadum",
	"safi", "safuda", "sajev", "saju", "salebi", "samo", "samogo", "samu",
	"sapoda", "sase", "satuva", "sebimel", "segecar", "segu", "segup", "seji",
	"sejige", "sekoj", "seku", "sela", "semec", "senu", "sere", "seso",
	"seta", "sevo", "sezeta", "sicela", "sifa", "sigavi", "sijo", "siker",
	"simune", "sina", "sini", "sipez", "sipiviv", "sira", "siralip", "siri",
	"sivaz", "sive", "sizis", "sizu", "sizuno", "socateb", "soci", "socopo",
	"sodi", "sodufig", "sofided", "sogo", "sogoni", "sojip", "soju", "soki",
	"soli", "soma", "somas", "some", "somon", "sopad", "sope", "soto",
	"sotov", "sotubag", "sovozu", "sozi", "sozok", "sozur", "suce", "sufi",
	"sugape", "sugeta", "sujov", "suli", "sulibac", "suna", "suni", "sunicat",
	"surab", "suro", "susa", "susodu", "suti", "sutunu", "suve", "suviko",
	"suzafej", "tabi", "tacelak", "tadizal", "tafe", "tajab", "tajadi", "tajo",
	"takal", "tako", "takut", "tame", "tamul", "tanap", "tanesof", "tanur",
	"tapev", "tarev", "taridar", "tati", "tazame", "tebi", "teca", "tefa",
	"tefo", "teguno", "tele", "telo", "tesar", "teso", "tesona", "tesuru",
	"tetit", "teva", "tezal", "tezet", "tibes", "ticar", "tidi", "tidij",
	"tidodu", "tifeb", "tija", "tijed", "tijo", "tijobe", "timo", "tineze",
	"tipi", "tipit", "tire", "tiso", "titiba", "tivunez", "tizi", "toba",
	"toca", "todi", "toface", "tofec", "tofitu", "togo", "tojat", "tojir",
	"tojo", "toju", "tolug", "toma", "tope", "torodek", "tosako", "totegek",
	"tovo", "tovosol", "tozito", "tozo", "tubo", "tuca", "tuceki", "tude",
	"tudobiz", "tufudik", "tugen", "tugile", "tugipe", "tumop", "tumori", "tuna",
	"tune", "tupu", "turep", "tuse", "tuseru", "tutij", "tuvo", "tuvuj",
	"tuzo", "vabo", "vabuso", "vadime", "vafetos", "vagilag", "vajij", "vake",
	"vaku", "valova", "vamolo", "vaniba", "vapa", "vapi", "varu", "vave",
	"vavoz", "vazu", "veba", "vebi", "vebo", "vecagi", "vece", "veco",
	"veda", "vefemat", "vefi", "vegem", "veguke", "veji", "veka", "vekare",
	"vekib", "veli", "velise", "velu", "vemac", "vepav", "vesug", "veti",
	"vetoca", "vevami", "veve", "vevibun", "vevo", "vifadu", "vifeji", "vifor",
	"vifu", "viguko", "viguli", "vija", "vijan", "vika", "vila", "vili",
	"vimi", "vimo", "vinafo", "vinun", "viruno", "viso", "visukil", "vita",
	"vivu", "vivuk", "vivuled", "vize", "vizodun", "vizu", "voba", "vobafa",
	"vobif", "vobo", "vocimu", "vode", "vodi", "vodibi", "vodu", "vofarot",
	"vofimo", "vofo", "vofova", "vofoza", "vogo", "vojo", "voko", "voku",
	"vola", "volisa", "vomavof", "vono", "vopa", "vopema", "vora", "voreb",
	"voregi", "voreje", "vorone", "vose", "vosobi", "vosufez", "votog", "votum",
	"vovo", "vozad", "vube", "vubi", "vuco", "vudize", "vufejo", "vufo",
	"vufu", "vugobe", "vujo", "vuke", "vuli", "vumi", "vunu", "vupe",
	"vupuje", "vuro", "vusago", "vuse", "vuta", "vutugec", "vuvata", "vuvuvac",
	"vuzeruj", "zabeta", "zaca", "zafu", "zajaser", "zajes", "zajevi", "zajogo",
	"zakeba", "zamipi", "zamu", "zaneji", "zasa", "zasezuk", "zasupa", "zate",
	"zava", "zebiti", "zebo", "zeca", "zeda", "zedi", "zedu", "zefiz",
	"zefodu", "zegi", "zeke", "zema", "zemo", "zenepi", "zeno", "zepam",
	"zepapa", "zepavad", "zera", "zeri", "zesel", "zeto", "zezecap", "zibano",
	"zibece", "zico", "zicoku", "zigaku", "zigo", "zijepi", "zijuc", "zikugo",
	"ziline", "zima", "zineg", "zinel", "zipopi", "zire", "ziti", "zive",
	"ziza", "zizo", "zizu", "zoca", "zofi", "zogi", "zomu", "zopobon",
	"zore", "zotavu", "zotoju", "zovop", "zubug", "zubujop", "zucu", "zufe",
	"zugaroj", "zuge", "zugoga", "zujo", "zuleku", "zulo", "zumago", "zume",
	"zumoli", "zuna", "zupizo", "zusa", "zusot", "zutalo", "zuvo", "zuvu",
	"zuvunit", "zuzuk",
}
