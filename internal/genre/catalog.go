package genre

var catalog = []Info{
	{Code: Action, Name: "acción", Key: "action", Terms: []string{"accion", "action"}, Related: []Code{Adventure, Thriller}},
	{Code: Adventure, Name: "aventura", Key: "adventure", Terms: []string{"aventura", "adventure"}},
	{Code: Animation, Name: "animación", Key: "animation", Terms: []string{"animacion", "animation", "animada", "dibujos"}},
	{Code: Comedy, Name: "comedia", Key: "comedy", Terms: []string{"comedia", "comedy", "gracioso", "divertido", "humor"}, Related: []Code{Romance, Family}},
	{Code: Crime, Name: "crimen", Key: "crime", Terms: []string{"crimen", "crime", "policial"}, Related: []Code{Drama, Thriller}},
	{Code: Documentary, Name: "documental", Terms: []string{"documental", "documentary"}},
	{Code: Drama, Name: "drama", Key: "drama", Terms: []string{"drama", "dramatico"}, Related: []Code{Crime, History}},
	{Code: Family, Name: "familiar", Terms: []string{"familiar", "family", "ninos", "infantil"}},
	{Code: Fantasy, Name: "fantasía", Terms: []string{"fantasia", "fantasy", "magico"}, Related: []Code{Adventure, Family}},
	{Code: History, Name: "historia", Terms: []string{"historia", "history", "historico"}},
	{Code: Horror, Name: "terror", Key: "horror", Terms: []string{"terror", "horror", "miedo"}, Related: []Code{Thriller, Mystery}},
	{Code: Music, Name: "música", Terms: []string{"musica", "music", "musical"}},
	{Code: Mystery, Name: "misterio", Terms: []string{"misterio", "mystery"}},
	{Code: Romance, Name: "romance", Key: "romance", Terms: []string{"romance", "romantico", "amor"}, Related: []Code{Comedy, Drama}},
	{Code: SciFi, Name: "ciencia ficción", Key: "scifi", Terms: []string{"ciencia ficcion", "sci-fi", "scifi", "futurista"}, Related: []Code{Action, Adventure}},
	{Code: Thriller, Name: "thriller", Key: "thriller", Terms: []string{"suspenso", "thriller"}},
	{Code: War, Name: "guerra", Terms: []string{"guerra", "war", "belico"}},
	{Code: Western, Name: "western", Terms: []string{"western", "oeste"}},
}

// fuzzyPatterns catch inflections and synonyms the exact term list misses.
var fuzzyPatterns = map[string][]Code{
	`terror|miedo|horror|espanto`:                      {Horror},
	`comedia|gracioso|divertido|humor|chistoso`:        {Comedy},
	`acción|accion|aventura|action`:                    {Action, Adventure},
	`romance|romántico|romantico|amor`:                 {Romance},
	`drama|dramático|dramatico`:                        {Drama},
	`ciencia ficción|sci-?fi|futurista|espacial`:       {SciFi},
	`fantasía|fantasia|fantasy|mágico|magico`:          {Fantasy},
	`crimen|policial|detective|noir`:                   {Crime},
	`animación|animacion|animation|dibujos|caricatura`: {Animation},
	`documental|documentary`:                           {Documentary},
	`familiar|family|niños|ninos|infantil`:             {Family},
	`historia|histórico|historico|history`:             {History},
	`música|musica|music|musical`:                      {Music},
	`misterio|mystery|enigma`:                          {Mystery},
	`guerra|war|bélico|belico`:                         {War},
	`western|oeste|vaqueros`:                           {Western},
	`suspenso|thriller|tensión|tension`:                {Thriller},
}
