package curated

import "trini/internal/genre"

// Justification templates receive the title as argument 1 and the rating
// as argument 2.
var spanishComedies = []Entry{
	{
		ID:            "comedy-es-1",
		Title:         "Ocho Apellidos Vascos",
		Overview:      "Un sevillano se hace pasar por vasco para conquistar a una chica de Euskadi. La comedia española más taquillera de la historia.",
		Rating:        6.4,
		ReleaseDate:   "2014-03-14",
		PosterPath:    "https://image.tmdb.org/t/p/w500/ocho_apellidos_vascos.jpg",
		Genres:        []genre.Code{genre.Comedy, genre.Romance},
		Justification: "'%[1]s' es la comedia española más taquillera de la historia, perfecta para quien busca humor español auténtico con %.1[2]f/10 de valoración",
	},
	{
		ID:            "comedy-es-2",
		Title:         "Ocho Apellidos Catalanes",
		Overview:      "Secuela de Ocho Apellidos Vascos. Koldo y Amaia se van a casar, pero antes deben conocer a los padres de ella en Cataluña.",
		Rating:        5.3,
		ReleaseDate:   "2015-11-20",
		PosterPath:    "https://image.tmdb.org/t/p/w500/ocho_apellidos_catalanes.jpg",
		Genres:        []genre.Code{genre.Comedy, genre.Romance},
		Justification: "'%[1]s' continúa la exitosa saga de comedias españolas con humor regional muy divertido, valorada con %.1[2]f/10",
	},
	{
		ID:            "comedy-es-3",
		Title:         "El Mundo es Suyo",
		Overview:      "Dos raperos de Sevilla intentan triunfar en el mundo de la música con resultados hilarantes.",
		Rating:        6.1,
		ReleaseDate:   "2018-06-22",
		PosterPath:    "https://image.tmdb.org/t/p/w500/el_mundo_es_suyo.jpg",
		Genres:        []genre.Code{genre.Comedy, genre.Music},
		Justification: "'%[1]s' combina música y comedia española moderna de forma muy original, una joya del cine español contemporáneo",
	},
	{
		ID:            "comedy-es-4",
		Title:         "Spanish Movie",
		Overview:      "Una parodia de las películas españolas más famosas, con humor absurdo y referencias al cine nacional.",
		Rating:        3.1,
		ReleaseDate:   "2009-08-28",
		PosterPath:    "https://image.tmdb.org/t/p/w500/spanish_movie.jpg",
		Genres:        []genre.Code{genre.Comedy},
		Justification: "'%[1]s' es una parodia muy divertida del cine español que te hará reír con referencias al cine nacional",
	},
	{
		ID:            "comedy-es-5",
		Title:         "Torrente 4: Lethal Crisis",
		Overview:      "El policía más gamberro de España vuelve con más acción y humor en esta cuarta entrega de la saga.",
		Rating:        5.4,
		ReleaseDate:   "2011-03-11",
		PosterPath:    "https://image.tmdb.org/t/p/w500/torrente_4.jpg",
		Genres:        []genre.Code{genre.Comedy, genre.Action},
		Justification: "'%[1]s' mezcla acción y comedia española con el humor característico de la saga Torrente, un clásico del humor español",
	},
	{
		ID:            "comedy-es-6",
		Title:         "Perdiendo el Norte",
		Overview:      "Dos amigos madrileños emigran a Alemania en busca de trabajo, pero las cosas no salen como esperaban.",
		Rating:        6.2,
		ReleaseDate:   "2015-03-06",
		PosterPath:    "https://image.tmdb.org/t/p/w500/perdiendo_el_norte.jpg",
		Genres:        []genre.Code{genre.Comedy, genre.Drama},
		Justification: "'%[1]s' trata la emigración española con mucho humor y situaciones muy divertidas que reflejan la realidad actual",
	},
	{
		ID:            "comedy-es-7",
		Title:         "Superlópez",
		Overview:      "Adaptación del famoso cómic español sobre un superhéroe muy particular y sus aventuras cómicas.",
		Rating:        5.4,
		ReleaseDate:   "2018-11-23",
		PosterPath:    "https://image.tmdb.org/t/p/w500/superlopez.jpg",
		Genres:        []genre.Code{genre.Comedy, genre.Action},
		Justification: "'%[1]s' es una adaptación cómica del famoso superhéroe español con humor muy original y efectos especiales divertidos",
	},
	{
		ID:            "comedy-es-8",
		Title:         "Padre no hay más que uno",
		Overview:      "Un padre de familia numerosa debe cuidar solo de sus hijos durante las vacaciones con resultados cómicos.",
		Rating:        6.1,
		ReleaseDate:   "2019-07-26",
		PosterPath:    "https://image.tmdb.org/t/p/w500/padre_no_hay_mas_que_uno.jpg",
		Genres:        []genre.Code{genre.Comedy, genre.Family},
		Justification: "'%[1]s' presenta situaciones familiares muy divertidas con humor español contemporáneo que conecta con todas las edades",
	},
	{
		ID:            "comedy-int-1",
		Title:         "El Gran Hotel Budapest",
		Overview:      "Las aventuras de Gustave H, un legendario conserje de un famoso hotel europeo, y Zero Moustafa, el botones que se convierte en su protegido.",
		Rating:        8.1,
		ReleaseDate:   "2014-03-28",
		PosterPath:    "https://image.tmdb.org/t/p/w500/grand_budapest_hotel.jpg",
		Genres:        []genre.Code{genre.Comedy, genre.Drama},
		Justification: "'%[1]s' es una obra maestra de Wes Anderson con un estilo visual único y humor sofisticado, valorada con %.1[2]f/10",
	},
	{
		ID:            "comedy-int-2",
		Title:         "El Libro de la Vida",
		Overview:      "Una aventura animada sobre el Día de los Muertos y el poder del amor verdadero.",
		Rating:        7.3,
		ReleaseDate:   "2014-10-17",
		PosterPath:    "https://image.tmdb.org/t/p/w500/book_of_life.jpg",
		Genres:        []genre.Code{genre.Animation, genre.Comedy},
		Justification: "'%[1]s' es una hermosa película animada sobre la cultura mexicana con mucho corazón y una animación espectacular",
	},
}

var genreHighlights = []Entry{
	{
		ID:            "action-1",
		Title:         "Mad Max: Fury Road",
		Overview:      "En un mundo post-apocalíptico, Max se une a Furiosa para escapar de un tirano.",
		Rating:        8.1,
		ReleaseDate:   "2015-05-15",
		PosterPath:    "/8tZYtuWezp8JbcsvHYO0O46tFbo.jpg",
		Genres:        []genre.Code{genre.Action, genre.Adventure},
		Justification: "'%[1]s' redefinió el cine de acción post-apocalíptico con secuencias espectaculares y una dirección magistral",
	},
	{
		ID:            "drama-1",
		Title:         "El Secreto de Sus Ojos",
		Overview:      "Un investigador judicial jubilado decide escribir una novela sobre un caso que no pudo resolver.",
		Rating:        8.2,
		ReleaseDate:   "2009-08-13",
		PosterPath:    "/z0nkb4ZGwSkbRvAwcNJ4ZrknS9o.jpg",
		Genres:        []genre.Code{genre.Drama, genre.Thriller},
		Justification: "'%[1]s' es un thriller psicológico argentino ganador del Oscar con una trama fascinante y actuaciones excepcionales",
	},
}

var generalPicks = []Entry{
	{
		ID:            "general-1",
		Title:         "Coco",
		Overview:      "Un niño mexicano viaja al mundo de los muertos para descubrir su historia familiar.",
		Rating:        8.4,
		ReleaseDate:   "2017-11-22",
		PosterPath:    "/gGEsBPAijhVUFoiNpgZXqRVWJt2.jpg",
		Genres:        []genre.Code{genre.Animation, genre.Family},
		Justification: "'%[1]s' es una obra maestra de Pixar que celebra la cultura mexicana de forma emotiva, ganadora del Oscar",
	},
	{
		ID:            "general-2",
		Title:         "El Laberinto del Fauno",
		Overview:      "Una niña descubre un mundo mágico durante la Guerra Civil Española.",
		Rating:        8.2,
		ReleaseDate:   "2006-10-11",
		PosterPath:    "/s8C4whhKtDaJvMDcyiMvx3BIF5F.jpg",
		Genres:        []genre.Code{genre.Fantasy, genre.Drama},
		Justification: "'%[1]s' es una fantasía oscura de Guillermo del Toro ambientada en la Guerra Civil Española, visualmente impresionante",
	},
}

// classics carry no fixed justification; they are explained from the query.
var classics = []Entry{
	{
		ID:          "550",
		Title:       "Fight Club",
		Overview:    "Un oficinista insomne y un carismático fabricante de jabón forman un club de lucha clandestino.",
		Rating:      8.4,
		ReleaseDate: "1999-10-15",
		PosterPath:  "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
		Genres:      []genre.Code{genre.Drama},
		VoteCount:   27000,
	},
	{
		ID:          "13",
		Title:       "Forrest Gump",
		Overview:    "Un hombre sencillo logra grandes cosas en su vida y presencia acontecimientos históricos decisivos.",
		Rating:      8.5,
		ReleaseDate: "1994-06-23",
		PosterPath:  "/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg",
		Genres:      []genre.Code{genre.Comedy, genre.Drama, genre.Romance},
		VoteCount:   26000,
	},
	{
		ID:          "278",
		Title:       "The Shawshank Redemption",
		Overview:    "Dos presos forjan una amistad a lo largo de los años y encuentran consuelo y redención a través de la decencia.",
		Rating:      9.3,
		ReleaseDate: "1994-09-23",
		PosterPath:  "/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg",
		Genres:      []genre.Code{genre.Drama},
		VoteCount:   25000,
	},
	{
		ID:          "238",
		Title:       "The Godfather",
		Overview:    "El patriarca de una dinastía del crimen organizado cede el control de su imperio a su hijo reacio.",
		Rating:      9.2,
		ReleaseDate: "1972-03-14",
		PosterPath:  "/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
		Genres:      []genre.Code{genre.Drama, genre.Crime},
		VoteCount:   19000,
	},
	{
		ID:          "424",
		Title:       "Schindler's List",
		Overview:    "En la Polonia ocupada durante la Segunda Guerra Mundial, el industrial Oskar Schindler se preocupa por sus trabajadores judíos.",
		Rating:      9.0,
		ReleaseDate: "1993-11-30",
		PosterPath:  "/sF1U4EUQS8YHUYjNl3pMGNIQyr0.jpg",
		Genres:      []genre.Code{genre.Drama, genre.History, genre.War},
		VoteCount:   15000,
	},
}
