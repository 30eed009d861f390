package testutil

// ContextUnit is a minimal opendm/context.js.
const ContextUnit = `
exports.num_cores = 4;
exports.processopts = ['dataset', 'opensfm', 'odm_meshing', 'odm_orthophoto'];
`

// KeywordConfigUnit declares its options the way the >=2.0 pipeline does:
// config receives the parser as a keyword.
const KeywordConfigUnit = `
var context = require('context');

function StoreValue() {}
function StoreTrue() {}

exports.config = function (opts) {
	var parser = opts.parser;

	parser.add_argument('--project-path', {
		metavar: '<path>',
		action: StoreValue,
		help: 'Path to the project folder.'
	});
	parser.add_argument('--min-num-features', {
		metavar: '<integer>',
		action: StoreValue,
		default: 10000,
		type: int,
		help: 'Minimum number of features to extract per image.'
	});
	parser.add_argument('--max-concurrency', {
		metavar: '<positive integer>',
		action: StoreValue,
		default: context.num_cores,
		type: int,
		help: 'The maximum number of processes to use.'
	});

	var rerun = parser.add_mutually_exclusive_group();
	rerun.add_argument('--rerun', {
		metavar: '<string>',
		action: StoreValue,
		choices: context.processopts,
		help: 'Rerun this stage only and stop.'
	});
	rerun.add_argument('--rerun-all', {
		action: StoreTrue,
		nargs: 0,
		default: false,
		help: 'Permanently delete all previous results and rerun the processing pipeline.'
	});

	parser.add_argument('--fast-orthophoto', {
		action: StoreTrue,
		nargs: 0,
		default: false,
		help: 'Skips dense reconstruction and 3D model generation.'
	});
};
`

// KeywordConfigJSON is the table KeywordConfigUnit produces next to
// ContextUnit.
const KeywordConfigJSON = `{` +
	`"--project-path":{"metavar":"<path>","action":"StoreValue","help":"Path to the project folder."},` +
	`"--min-num-features":{"metavar":"<integer>","action":"StoreValue","default":"10000","type":"int","help":"Minimum number of features to extract per image."},` +
	`"--max-concurrency":{"metavar":"<positive integer>","action":"StoreValue","default":"4","type":"int","help":"The maximum number of processes to use."},` +
	`"--rerun":{"metavar":"<string>","action":"StoreValue","choices":"[\"dataset\",\"opensfm\",\"odm_meshing\",\"odm_orthophoto\"]","help":"Rerun this stage only and stop."},` +
	`"--rerun-all":{"action":"StoreTrue","nargs":"0","default":"false","help":"Permanently delete all previous results and rerun the processing pipeline."},` +
	`"--fast-orthophoto":{"action":"StoreTrue","nargs":"0","default":"false","help":"Skips dense reconstruction and 3D model generation."}` +
	`}`

// ModuleConfigUnit declares its options the way the 1.0 pipeline does: the
// parser is assigned to the module before config runs.
const ModuleConfigUnit = `
exports.parser = null;

exports.config = function () {
	var parser = exports.parser;

	parser.add_argument('--project-path', {
		metavar: '<path>',
		help: 'Path to the project folder.'
	});
	parser.add_argument('--resize-to', {
		metavar: '<integer>',
		default: 2048,
		type: int,
		help: 'Resizes images by the largest side.'
	});
	parser.add_argument('--use-fixed-camera-params', {
		action: 'store_true',
		default: false,
		help: 'Turn off camera parameter optimization during bundler.'
	});
};
`

// ModuleConfigJSON is the table ModuleConfigUnit produces.
const ModuleConfigJSON = `{` +
	`"--project-path":{"metavar":"<path>","help":"Path to the project folder."},` +
	`"--resize-to":{"metavar":"<integer>","default":"2048","type":"int","help":"Resizes images by the largest side."},` +
	`"--use-fixed-camera-params":{"action":"store_true","default":"false","help":"Turn off camera parameter optimization during bundler."}` +
	`}`
